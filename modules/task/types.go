package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task.
// Status is optional and defaults to "created".
type CreateTaskRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// ListTasksRequest is the request for listing tasks. Limit and Page are
// pointers so that an omitted value falls back to the defaults while an
// explicit out-of-range value is rejected.
type ListTasksRequest struct {
	Status string `json:"status,omitempty"`
	Search string `json:"q,omitempty"`
	Limit  *int   `json:"limit,omitempty"`
	Page   *int   `json:"page,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is the request for a partial update. Only non-nil
// fields are validated and applied; absent fields stay untouched.
type UpdateTaskRequest struct {
	TaskID      string  `json:"task_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract driving adapters (like the HTTP API) use to reach
// the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*TaskResponse, error)
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
}
