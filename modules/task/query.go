package task

import (
	"fmt"
	"strings"

	domain "github.com/inetsmol/task-manager/domain/task"
)

// Pagination bounds. Absent values get defaults; explicit out-of-range
// values are rejected rather than clamped.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// QuerySpec is the bounded, deterministic query the repository executes.
type QuerySpec struct {
	Status domain.Status // empty means no status filter
	Search string
	Offset int
	Limit  int
}

// resolveListQuery validates the list filters and computes the page window.
func resolveListQuery(req *ListTasksRequest) (QuerySpec, error) {
	spec := QuerySpec{
		Search: req.Search,
		Limit:  DefaultLimit,
	}

	if req.Status != "" {
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			return QuerySpec{}, &ValidationError{Field: "status", Reason: err.Error()}
		}
		spec.Status = status
	}

	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > MaxLimit {
			return QuerySpec{}, &ValidationError{
				Field:  "limit",
				Reason: fmt.Sprintf("must be between 1 and %d", MaxLimit),
			}
		}
		spec.Limit = *req.Limit
	}

	page := 1
	if req.Page != nil {
		if *req.Page < 1 {
			return QuerySpec{}, &ValidationError{Field: "page", Reason: "must be at least 1"}
		}
		page = *req.Page
	}
	spec.Offset = (page - 1) * spec.Limit

	return spec, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in the search term match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
