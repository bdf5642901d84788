package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	domain "github.com/inetsmol/task-manager/domain/task"
	"github.com/inetsmol/task-manager/events"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TaskModule provides task management services via GORM + SQLite.
type TaskModule struct {
	db       *gorm.DB
	repo     *Repository
	dbPath   string
	eventBus mono.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)
var _ mono.HealthCheckableModule = (*TaskModule)(nil)

// NewModule creates a new TaskModule.
func NewModule() *TaskModule {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "tasks.db"
	}
	return &TaskModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TaskModule) Name() string {
	return "task"
}

// SetEventBus receives the application event bus.
func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.<module>." so "create"
// becomes "services.task.create" in the NATS subject.
func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[task] Registered services: services.task.{create,get,list,update,delete}")
	return nil
}

// Start initializes the database connection and runs migrations.
func (m *TaskModule) Start(_ context.Context) error {
	log.Printf("[task] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m.db = db

	if err := m.db.AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.repo = NewRepository(m.db)

	log.Println("[task] Module started successfully")
	return nil
}

// Stop gracefully closes the database connection.
func (m *TaskModule) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	log.Println("[task] Closing database connection...")

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[task] Database connection closed")
	return nil
}

// Health performs a health check on the task module.
func (m *TaskModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}
