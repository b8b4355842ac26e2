package ports

import (
	"context"

	"github.com/opencourses/courses-api/internal/core/domain"
)

// CourseCache is a read-through cache for the course list projection.
// Implementations must treat a miss as (nil, false, nil), not an error.
type CourseCache interface {
	GetList(ctx context.Context) ([]*domain.Course, bool, error)
	SetList(ctx context.Context, courses []*domain.Course) error
	InvalidateList(ctx context.Context) error
}
