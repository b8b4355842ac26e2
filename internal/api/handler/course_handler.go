package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/courses-api/internal/api/metrics"
	"github.com/opencourses/courses-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for courses.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List handles GET /courses.
//
// @Summary      List all courses with their owners
// @Tags         courses
// @Produce      json
// @Success      200  {object}  listCoursesResponse
// @Failure      500  {object}  map[string]any
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listCoursesResponse{Courses: make([]courseResponse, 0, len(courses))}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, toCourseResponse(course))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /courses/:id. An unknown id answers 200 with a null body,
// not 404 — long-standing behavior clients depend on.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseResponse
// @Failure      500  {object}  map[string]any
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if course == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Create handles POST /courses.
//
// @Summary      Create a course owned by the authenticated user
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      saveCourseRequest  true  "Course details"
// @Success      201   "Location header addresses the new course"
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]any
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req saveCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.CreateCourse(c.Request().Context(), principal, ports.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/courses/"+created.ID)
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /courses/:id.
//
// @Summary      Update a course (owner only)
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  string             true  "Course id"
// @Param        body  body  saveCourseRequest  true  "Course details"
// @Success      204   "No content"
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req saveCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.service.UpdateCourse(c.Request().Context(), principal, c.Param("id"), ports.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	})
	if err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /courses/:id, under the same ownership rule as Update.
//
// @Summary      Delete a course (owner only)
// @Tags         courses
// @Security     BasicAuth
// @Param        id  path  string  true  "Course id"
// @Success      204  "No content"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCourse(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
