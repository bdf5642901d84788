package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/inetsmol/task-manager/modules/api"
	"github.com/inetsmol/task-manager/modules/audit"
	"github.com/inetsmol/task-manager/modules/task"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Manager API ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies.
	app.Register(audit.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())  // Core domain (persistence + services, emits events)
	app.Register(api.NewModule())   // Driving adapter (depends on task)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints:")
	log.Println("  POST   /tasks       - Create a task")
	log.Println("  GET    /tasks       - List tasks (status, q, limit, page)")
	log.Println("  GET    /tasks/:id   - Get a task by ID")
	log.Println("  PATCH  /tasks/:id   - Partially update a task")
	log.Println("  DELETE /tasks/:id   - Delete a task")
	log.Println("  GET    /health      - Health check")
	log.Println("")
	log.Println("Configuration (environment):")
	log.Println("  DB_PATH   - SQLite database file (default: tasks.db)")
	log.Println("  DB_DEBUG  - Set to \"true\" to log SQL statements")
	log.Println("  HTTP_ADDR - HTTP listen address (default: :8000)")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
