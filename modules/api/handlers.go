package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/inetsmol/task-manager/modules/task"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	tasks := m.app.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Patch("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// createTask handles POST /tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.tasks.CreateTask(c.Context(), &task.CreateTaskRequest{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(resp))
}

// getTask handles GET /tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	resp, err := m.tasks.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toTaskResponse(resp))
}

// listTasks handles GET /tasks?status=&q=&limit=&page=.
// The response body is the ordered sequence of tasks, possibly empty.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	req := task.ListTasksRequest{
		Status: c.Query("status"),
		Search: c.Query("q"),
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation_error",
				Message: "limit must be an integer",
			})
		}
		req.Limit = &n
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation_error",
				Message: "page must be an integer",
			})
		}
		req.Page = &n
	}

	resp, err := m.tasks.ListTasks(c.Context(), &req)
	if err != nil {
		return renderError(c, err)
	}

	out := make([]TaskResponse, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		out = append(out, toTaskResponse(&resp.Tasks[i]))
	}
	return c.JSON(out)
}

// updateTask handles PATCH /tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.tasks.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(toTaskResponse(resp))
}

// deleteTask handles DELETE /tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	if err := m.tasks.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// renderError maps service errors to HTTP status codes: validation failures
// are client errors, misses are 404, storage failures are server errors.
func renderError(c *fiber.Ctx, err error) error {
	var verr *task.ValidationError
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

// toTaskResponse converts a service task to the HTTP representation.
func toTaskResponse(t *task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
