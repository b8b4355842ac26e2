package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/courses-api/internal/api/metrics"
	"github.com/opencourses/courses-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetCurrent handles GET /users.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) GetCurrent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:           principal.ID,
		FirstName:    principal.FirstName,
		LastName:     principal.LastName,
		EmailAddress: principal.EmailAddress,
	})
}

// Create handles POST /users.
//
// @Summary      Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   "Location header points at the site root"
// @Failure      400   {object}  map[string][]string
// @Failure      500   {object}  map[string]any
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}
