package task

import (
	"errors"
	"testing"

	domain "github.com/inetsmol/task-manager/domain/task"
)

func intPtr(n int) *int {
	return &n
}

func TestResolveListQuery(t *testing.T) {
	tests := []struct {
		name     string
		req      ListTasksRequest
		want     QuerySpec
		wantErr  bool
		errField string
	}{
		{
			name: "defaults",
			req:  ListTasksRequest{},
			want: QuerySpec{Limit: DefaultLimit, Offset: 0},
		},
		{
			name: "explicit limit and page",
			req:  ListTasksRequest{Limit: intPtr(2), Page: intPtr(2)},
			want: QuerySpec{Limit: 2, Offset: 2},
		},
		{
			name: "default limit with later page",
			req:  ListTasksRequest{Page: intPtr(3)},
			want: QuerySpec{Limit: DefaultLimit, Offset: 200},
		},
		{
			name: "limit at upper bound",
			req:  ListTasksRequest{Limit: intPtr(MaxLimit)},
			want: QuerySpec{Limit: MaxLimit, Offset: 0},
		},
		{
			name: "status filter",
			req:  ListTasksRequest{Status: "in_progress"},
			want: QuerySpec{Status: domain.StatusInProgress, Limit: DefaultLimit},
		},
		{
			name: "search passes through",
			req:  ListTasksRequest{Search: "foo"},
			want: QuerySpec{Search: "foo", Limit: DefaultLimit},
		},
		{
			name:     "zero limit rejected",
			req:      ListTasksRequest{Limit: intPtr(0)},
			wantErr:  true,
			errField: "limit",
		},
		{
			name:     "limit above bound rejected",
			req:      ListTasksRequest{Limit: intPtr(MaxLimit + 1)},
			wantErr:  true,
			errField: "limit",
		},
		{
			name:     "negative limit rejected",
			req:      ListTasksRequest{Limit: intPtr(-5)},
			wantErr:  true,
			errField: "limit",
		},
		{
			name:     "zero page rejected",
			req:      ListTasksRequest{Page: intPtr(0)},
			wantErr:  true,
			errField: "page",
		},
		{
			name:     "unknown status rejected",
			req:      ListTasksRequest{Status: "archived"},
			wantErr:  true,
			errField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveListQuery(&tt.req)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if verr.Field != tt.errField {
					t.Errorf("expected field %q, got %q", tt.errField, verr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveListQuery() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveListQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"2% fat", `2\% fat`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeLike(tt.in); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
