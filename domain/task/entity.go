package task

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus validates a raw status value against the closed enumeration.
// Any status may follow any other; there is no transition graph.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCreated, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Field length bounds, counted in runes.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
)

// Task is the core domain entity representing a tracked unit of work.
// Description is a pointer so that an absent description persists as NULL,
// not as an empty string.
type Task struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"size:2000" json:"description"`
	Status      Status    `gorm:"size:20;not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
