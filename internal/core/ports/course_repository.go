package ports

import (
	"context"

	"github.com/opencourses/courses-api/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
//
// FindAll and FindByID return courses with Owner populated; lookups by id
// return domain.ErrCourseNotFound when no course matches.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindAll(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}
