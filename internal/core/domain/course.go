package domain

import "time"

// Course is a titled resource owned by exactly one User. UserID is set at
// creation time from the authenticated principal and never changes.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	UserID          string    `json:"-"`
	Owner           *User     `json:"user,omitempty"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// OwnedBy reports whether the course belongs to the given user.
func (c *Course) OwnedBy(userID string) bool {
	return c.UserID != "" && c.UserID == userID
}
