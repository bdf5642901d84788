package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCreatedEvent is emitted when a new task is created.
type TaskCreatedEvent struct {
	TaskID    string    `json:"task_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskCreatedV1 is the typed event definition for task creation.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskCreatedEvent](
	"task", "TaskCreated", "v1",
)

// TaskUpdatedEvent is emitted when task fields change.
type TaskUpdatedEvent struct {
	TaskID    string    `json:"task_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskUpdatedV1 is the typed event definition for task updates.
// Subject: events.task.v1.task-updated
var TaskUpdatedV1 = helper.EventDefinition[TaskUpdatedEvent](
	"task", "TaskUpdated", "v1",
)

// TaskDeletedEvent is emitted when a task is deleted.
type TaskDeletedEvent struct {
	TaskID    string    `json:"task_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// TaskDeletedV1 is the typed event definition for task deletion.
// Subject: events.task.v1.task-deleted
var TaskDeletedV1 = helper.EventDefinition[TaskDeletedEvent](
	"task", "TaskDeleted", "v1",
)
