package api

import "time"

// CreateTaskRequest is the HTTP request body for creating a task.
type CreateTaskRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// UpdateTaskRequest is the HTTP request body for a partial update.
// Absent fields are left untouched.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// TaskResponse is the HTTP representation of a task. Description is null
// when the task has none.
type TaskResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HealthResponse is the HTTP response for the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
