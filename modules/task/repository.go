package task

import (
	"errors"
	"strings"

	domain "github.com/inetsmol/task-manager/domain/task"
	"gorm.io/gorm"
)

// Repository is the persistence gateway for tasks. It owns the on-disk
// representation; no other component touches the store directly.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new task.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return &StorageError{Op: "create", Err: err}
	}
	return nil
}

// FindByID retrieves a task by its ID. A miss is ErrTaskNotFound, not a
// storage failure.
func (r *Repository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, &StorageError{Op: "find", Err: err}
	}
	return &task, nil
}

// Update writes the full merged record in a single statement. The caller
// merges the partial payload into the loaded record first; Select("*")
// makes sure a nil description is written back as NULL.
func (r *Repository) Update(task *domain.Task) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", task.ID).Select("*").Updates(task)
	if err := result.Error; err != nil {
		return &StorageError{Op: "update", Err: err}
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task permanently.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Query returns the window of tasks selected by spec, in insertion order.
// Repeated identical queries see the same order: created_at with the id as
// a tie-breaker.
func (r *Repository) Query(spec QuerySpec) ([]*domain.Task, error) {
	tx := r.db.Model(&domain.Task{})

	if spec.Status != "" {
		tx = tx.Where("status = ?", spec.Status)
	}
	if spec.Search != "" {
		// SQLite lower() folds ASCII only, which matches the original
		// store's substring search. A NULL description never matches.
		pattern := "%" + escapeLike(strings.ToLower(spec.Search)) + "%"
		tx = tx.Where(
			`lower(name) LIKE ? ESCAPE '\' OR (description IS NOT NULL AND lower(description) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}

	var tasks []*domain.Task
	err := tx.Order("created_at, id").Offset(spec.Offset).Limit(spec.Limit).Find(&tasks).Error
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return tasks, nil
}
