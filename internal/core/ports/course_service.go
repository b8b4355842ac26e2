package ports

import (
	"context"

	"github.com/opencourses/courses-api/internal/core/domain"
)

// CourseInput carries the client-settable course fields. Ownership is never
// part of the input; the service assigns it from the principal.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// CourseService defines course use-cases. Update and Delete enforce the
// ownership rule: the lookup and owner check happen before any mutation.
type CourseService interface {
	ListCourses(ctx context.Context) ([]*domain.Course, error)
	// GetCourse returns (nil, nil) when no course matches — the read path is
	// deliberately lenient, unlike Update/Delete.
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, owner *domain.User, input CourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, principal *domain.User, id string, input CourseInput) error
	DeleteCourse(ctx context.Context, principal *domain.User, id string) error
}
