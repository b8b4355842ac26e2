package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opencourses/courses-api/internal/core/domain"
)

const (
	courseListKey = "courses:list"
	courseListTTL = 30 * time.Second
)

// CourseCache caches the course list projection in Redis. Entries expire
// after a short TTL and are dropped eagerly on any course mutation.
type CourseCache struct {
	client *redis.Client
}

// NewCourseCache creates a CourseCache wrapping the given Redis client.
func NewCourseCache(client *redis.Client) *CourseCache {
	return &CourseCache{client: client}
}

// cachedCourse is the storage form; domain JSON tags hide fields (owner id)
// that the cache must round-trip intact.
type cachedCourse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	EstimatedTime   string             `json:"estimated_time,omitempty"`
	MaterialsNeeded string             `json:"materials_needed,omitempty"`
	UserID          string             `json:"user_id"`
	Owner           *cachedCourseOwner `json:"owner,omitempty"`
}

type cachedCourseOwner struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

func (c *CourseCache) GetList(ctx context.Context) ([]*domain.Course, bool, error) {
	raw, err := c.client.Get(ctx, courseListKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var cached []cachedCourse
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	courses := make([]*domain.Course, 0, len(cached))
	for _, cc := range cached {
		course := &domain.Course{
			ID:              cc.ID,
			Title:           cc.Title,
			Description:     cc.Description,
			EstimatedTime:   cc.EstimatedTime,
			MaterialsNeeded: cc.MaterialsNeeded,
			UserID:          cc.UserID,
		}
		if cc.Owner != nil {
			course.Owner = &domain.User{
				ID:           cc.Owner.ID,
				FirstName:    cc.Owner.FirstName,
				LastName:     cc.Owner.LastName,
				EmailAddress: cc.Owner.EmailAddress,
			}
		}
		courses = append(courses, course)
	}
	return courses, true, nil
}

func (c *CourseCache) SetList(ctx context.Context, courses []*domain.Course) error {
	cached := make([]cachedCourse, 0, len(courses))
	for _, course := range courses {
		cc := cachedCourse{
			ID:              course.ID,
			Title:           course.Title,
			Description:     course.Description,
			EstimatedTime:   course.EstimatedTime,
			MaterialsNeeded: course.MaterialsNeeded,
			UserID:          course.UserID,
		}
		if course.Owner != nil {
			cc.Owner = &cachedCourseOwner{
				ID:           course.Owner.ID,
				FirstName:    course.Owner.FirstName,
				LastName:     course.Owner.LastName,
				EmailAddress: course.Owner.EmailAddress,
			}
		}
		cached = append(cached, cc)
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, courseListKey, raw, courseListTTL).Err()
}

func (c *CourseCache) InvalidateList(ctx context.Context) error {
	return c.client.Del(ctx, courseListKey).Err()
}
