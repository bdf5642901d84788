package task

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"
	domain "github.com/inetsmol/task-manager/domain/task"
	"github.com/inetsmol/task-manager/events"
)

// validateName checks the required name field (1-100 characters).
func validateName(name string) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > domain.MaxNameLength {
		return &ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("must be between 1 and %d characters", domain.MaxNameLength),
		}
	}
	return nil
}

// validateDescription checks the optional description field (<=2000 characters).
func validateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > domain.MaxDescriptionLength {
		return &ValidationError{
			Field:  "description",
			Reason: fmt.Sprintf("must be at most %d characters", domain.MaxDescriptionLength),
		}
	}
	return nil
}

// createTask handles the task.create service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if err := validateName(req.Name); err != nil {
		return TaskResponse{}, err
	}
	if err := validateDescription(req.Description); err != nil {
		return TaskResponse{}, err
	}

	status := domain.StatusCreated
	if req.Status != nil {
		parsed, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return TaskResponse{}, &ValidationError{Field: "status", Reason: err.Error()}
		}
		status = parsed
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.repo.Create(task); err != nil {
		return TaskResponse{}, err
	}

	// Event publishing is best-effort; log but don't fail the operation.
	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    task.ID,
			Name:      task.Name,
			Status:    string(task.Status),
			CreatedAt: task.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", task.ID, err)
		}
	}

	return toTaskResponse(task), nil
}

// getTask handles the task.get service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.TaskID == "" {
		return TaskResponse{}, &ValidationError{Field: "task_id", Reason: "is required"}
	}

	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// listTasks handles the task.list service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	spec, err := resolveListQuery(&req)
	if err != nil {
		return ListTasksResponse{}, err
	}

	tasks, err := m.repo.Query(spec)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// updateTask handles the task.update service request. Only supplied fields
// are validated and applied; validation happens before the store is touched
// so a rejected patch never partially mutates state.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.TaskID == "" {
		return TaskResponse{}, &ValidationError{Field: "task_id", Reason: "is required"}
	}
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return TaskResponse{}, err
		}
	}
	if err := validateDescription(req.Description); err != nil {
		return TaskResponse{}, err
	}

	var status domain.Status
	if req.Status != nil {
		parsed, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return TaskResponse{}, &ValidationError{Field: "status", Reason: err.Error()}
		}
		status = parsed
	}

	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := m.repo.Update(task); err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:    task.ID,
			Status:    string(task.Status),
			UpdatedAt: task.UpdatedAt,
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskUpdated event for task %s: %v", task.ID, err)
		}
	}

	return toTaskResponse(task), nil
}

// deleteTask handles the task.delete service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.TaskID == "" {
		return DeleteTaskResponse{}, &ValidationError{Field: "task_id", Reason: "is required"}
	}

	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.TaskID}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			DeletedAt: time.Now().UTC(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %s: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true, ID: req.TaskID}, nil
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
