package audit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/inetsmol/task-manager/events"
)

// Entry is one recorded task lifecycle event.
type Entry struct {
	TaskID    string    `json:"task_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditModule keeps an in-memory trail of task lifecycle events.
// It subscribes to domain events using the EventConsumerModule interface.
type AuditModule struct {
	entries []Entry
	mu      sync.RWMutex
}

var _ mono.Module = (*AuditModule)(nil)
var _ mono.EventConsumerModule = (*AuditModule)(nil)

func NewModule() *AuditModule {
	return &AuditModule{
		entries: make([]Entry, 0),
	}
}

func (m *AuditModule) Name() string {
	return "audit"
}

func (m *AuditModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	log.Printf("[audit] Registered event consumers: TaskCreated, TaskUpdated, TaskDeleted")
	return nil
}

func (m *AuditModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	log.Printf("[audit] Task created: %s - %s", event.TaskID, event.Name)
	m.record(event.TaskID, "task_created", fmt.Sprintf("Task %q created with status %s", event.Name, event.Status))
	return nil
}

func (m *AuditModule) handleTaskUpdated(_ context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	log.Printf("[audit] Task updated: %s -> %s", event.TaskID, event.Status)
	m.record(event.TaskID, "task_updated", fmt.Sprintf("Task %s now has status %s", event.TaskID, event.Status))
	return nil
}

func (m *AuditModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	log.Printf("[audit] Task deleted: %s", event.TaskID)
	m.record(event.TaskID, "task_deleted", fmt.Sprintf("Task %s deleted", event.TaskID))
	return nil
}

func (m *AuditModule) record(taskID, action, detail string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		TaskID:    taskID,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now(),
	})
}

// Entries returns a copy of the recorded trail.
func (m *AuditModule) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

func (m *AuditModule) Start(_ context.Context) error {
	log.Println("[audit] Module started - listening for task events")
	return nil
}

func (m *AuditModule) Stop(_ context.Context) error {
	log.Println("[audit] Module stopped")
	return nil
}
