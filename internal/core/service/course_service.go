package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencourses/courses-api/internal/core/domain"
	"github.com/opencourses/courses-api/internal/core/ports"
)

// CourseService implements course CRUD with per-resource ownership checks.
// The cache is optional; a nil cache sends every list straight to the store.
type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.CourseCache
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache ports.CourseCache, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

// ListCourses returns every course with its owner populated. Cache failures
// degrade to the store; they never fail the request.
func (s *CourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	if s.cache != nil {
		courses, ok, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("course list cache read failed")
		} else if ok {
			return courses, nil
		}
	}

	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, courses); err != nil {
			s.logger.Warn().Err(err).Msg("course list cache write failed")
		}
	}
	return courses, nil
}

// GetCourse looks up a single course. A miss returns (nil, nil) rather than
// an error: the read endpoint answers 200 with a null body for unknown ids.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return course, nil
}

// CreateCourse persists a new course owned by the given principal. Ownership
// comes from the authenticated account only; the input carries no owner field.
func (s *CourseService) CreateCourse(ctx context.Context, owner *domain.User, input ports.CourseInput) (*domain.Course, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          owner.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return created, nil
}

// UpdateCourse applies the input to an existing course. The lookup and the
// ownership check both happen before the store mutation.
func (s *CourseService) UpdateCourse(ctx context.Context, principal *domain.User, id string, input ports.CourseInput) error {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(principal.ID) {
		return domain.ErrNotCourseOwner
	}

	course.Title = input.Title
	course.Description = input.Description
	course.EstimatedTime = input.EstimatedTime
	course.MaterialsNeeded = input.MaterialsNeeded
	course.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, course); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

// DeleteCourse removes a course, under the same ownership rule as UpdateCourse.
func (s *CourseService) DeleteCourse(ctx context.Context, principal *domain.User, id string) error {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(principal.ID) {
		return domain.ErrNotCourseOwner
	}

	if err := s.repo.Delete(ctx, course.ID); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *CourseService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateList(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("course list cache invalidation failed")
	}
}
