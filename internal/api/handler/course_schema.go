package handler

import "github.com/opencourses/courses-api/internal/core/domain"

// --- Request / Response types ---

// saveCourseRequest is shared by create and update. UserID is accepted for
// wire compatibility but never trusted; ownership always comes from the
// authenticated principal.
type saveCourseRequest struct {
	Title           string `json:"title"       validate:"required"`
	Description     string `json:"description" validate:"required"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
	UserID          string `json:"userId"`
}

type courseResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   string        `json:"estimatedTime"`
	MaterialsNeeded string        `json:"materialsNeeded"`
	User            *userResponse `json:"user,omitempty"`
}

type listCoursesResponse struct {
	Courses []courseResponse `json:"courses"`
}

func toCourseResponse(c *domain.Course) courseResponse {
	resp := courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
	}
	if c.Owner != nil {
		resp.User = &userResponse{
			ID:           c.Owner.ID,
			FirstName:    c.Owner.FirstName,
			LastName:     c.Owner.LastName,
			EmailAddress: c.Owner.EmailAddress,
		}
	}
	return resp
}
