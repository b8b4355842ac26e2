package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/courses-api/internal/api/middleware"
	"github.com/opencourses/courses-api/internal/core/domain"
	"github.com/opencourses/courses-api/internal/core/ports"
)

type stubCourseService struct {
	listFn   func(ctx context.Context) ([]*domain.Course, error)
	getFn    func(ctx context.Context, id string) (*domain.Course, error)
	createFn func(ctx context.Context, owner *domain.User, input ports.CourseInput) (*domain.Course, error)
	updateFn func(ctx context.Context, principal *domain.User, id string, input ports.CourseInput) error
	deleteFn func(ctx context.Context, principal *domain.User, id string) error
}

func (s *stubCourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	return s.listFn(ctx)
}

func (s *stubCourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, owner *domain.User, input ports.CourseInput) (*domain.Course, error) {
	return s.createFn(ctx, owner, input)
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, principal *domain.User, id string, input ports.CourseInput) error {
	return s.updateFn(ctx, principal, id, input)
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, principal *domain.User, id string) error {
	return s.deleteFn(ctx, principal, id)
}

var testPrincipal = &domain.User{ID: "1", FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}

func bookcase() *domain.Course {
	return &domain.Course{
		ID:          "c1",
		Title:       "Build a Basic Bookcase",
		Description: "High-end furniture projects are great to dream about.",
		UserID:      "1",
		Owner:       testPrincipal,
	}
}

func TestCourseHandler_List(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		listFn: func(context.Context) ([]*domain.Course, error) {
			return []*domain.Course{bookcase()}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Courses []map[string]any `json:"courses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Courses) != 1 {
		t.Fatalf("expected one course, got %d", len(resp.Courses))
	}
	course := resp.Courses[0]
	if course["title"] != "Build a Basic Bookcase" {
		t.Fatalf("unexpected course: %+v", course)
	}
	user, ok := course["user"].(map[string]any)
	if !ok || user["emailAddress"] != "joe@smith.com" {
		t.Fatalf("expected nested owner, got %+v", course["user"])
	}
}

func TestCourseHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		listFn: func(context.Context) ([]*domain.Course, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"courses":[]`) {
		t.Fatalf("expected empty list, got %s", rec.Body.String())
	}
}

func TestCourseHandler_Get_Found(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		getFn: func(_ context.Context, id string) (*domain.Course, error) {
			if id != "c1" {
				t.Fatalf("unexpected id %q", id)
			}
			return bookcase(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Bookcase") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCourseHandler_Get_MissIsLenient(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		getFn: func(context.Context, string) (*domain.Course, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on miss, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body, got %q", rec.Body.String())
	}
}

func TestCourseHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		createFn: func(_ context.Context, owner *domain.User, input ports.CourseInput) (*domain.Course, error) {
			if owner != testPrincipal {
				t.Fatalf("owner is not the principal: %+v", owner)
			}
			created := bookcase()
			created.Title = input.Title
			return created, nil
		},
	})

	body := strings.NewReader(`{"title":"Build a Basic Bookcase","description":"Sawdust ahead.","userId":"999"}`)
	req := httptest.NewRequest(http.MethodPost, "/courses", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, testPrincipal)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/courses/c1" {
		t.Fatalf("expected Location /courses/c1, got %q", loc)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", rec.Body.String())
	}
}

func TestCourseHandler_Create_Validation(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		createFn: func(context.Context, *domain.User, ports.CourseInput) (*domain.Course, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, testPrincipal)

	err := handler.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"A title is required", "A description is required"}
	got := ve.Messages()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected messages: %v", got)
	}
}

func TestCourseHandler_Update_ErrorsPassThrough(t *testing.T) {
	e := newTestEcho()

	for _, tc := range []struct {
		name string
		err  error
	}{
		{"not found", domain.ErrCourseNotFound},
		{"not owner", domain.ErrNotCourseOwner},
	} {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCourseHandler(&stubCourseService{
				updateFn: func(context.Context, *domain.User, string, ports.CourseInput) error {
					return tc.err
				},
			})

			body := strings.NewReader(`{"title":"T","description":"D"}`)
			req := httptest.NewRequest(http.MethodPut, "/courses/c1", body)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("c1")
			c.Set(middleware.PrincipalKey, testPrincipal)

			if err := handler.Update(c); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v unchanged, got %v", tc.err, err)
			}
		})
	}
}

func TestCourseHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		updateFn: func(_ context.Context, principal *domain.User, id string, input ports.CourseInput) error {
			if principal != testPrincipal || id != "c1" || input.Title != "Renamed" {
				t.Fatalf("unexpected args: %v %q %+v", principal, id, input)
			}
			return nil
		},
	})

	body := strings.NewReader(`{"title":"Renamed","description":"D"}`)
	req := httptest.NewRequest(http.MethodPut, "/courses/c1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")
	c.Set(middleware.PrincipalKey, testPrincipal)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCourseHandler_Delete(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{
		deleteFn: func(_ context.Context, principal *domain.User, id string) error {
			if principal != testPrincipal || id != "c1" {
				t.Fatalf("unexpected args: %v %q", principal, id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/courses/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")
	c.Set(middleware.PrincipalKey, testPrincipal)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCourseHandler_Delete_NoPrincipal(t *testing.T) {
	e := newTestEcho()
	handler := NewCourseHandler(&stubCourseService{})

	req := httptest.NewRequest(http.MethodDelete, "/courses/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
