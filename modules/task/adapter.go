package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via
// SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// rehydrateError restores the error kind after the reply crossed the
// service container as a plain string, so callers can keep mapping
// not-found and validation outcomes without knowing the transport.
func rehydrateError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, ErrTaskNotFound.Error()) {
		return ErrTaskNotFound
	}
	if i := strings.Index(msg, validationPrefix); i >= 0 {
		rest := msg[i+len(validationPrefix):]
		field, reason, ok := strings.Cut(rest, ": ")
		if !ok {
			field, reason = "", rest
		}
		return &ValidationError{Field: field, Reason: reason}
	}
	return err
}

// CreateTask creates a new task via the task.create service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, rehydrateError(err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the task.get service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID string) (*TaskResponse, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, rehydrateError(err)
	}
	return &resp, nil
}

// ListTasks lists tasks with filters and pagination via the task.list service.
func (a *taskAdapter) ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, rehydrateError(err)
	}
	return &resp, nil
}

// UpdateTask applies a partial update via the task.update service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, rehydrateError(err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the task.delete service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID string) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return rehydrateError(err)
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %s", taskID)
	}
	return nil
}
