package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
)

func runGate(t *testing.T, session *domain.User, page domain.Page) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(SessionKey, session)
	}

	called := false
	err := RequirePage(page)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, called, err
}

func TestRequirePage_Allows(t *testing.T) {
	admin := &domain.User{ID: "1", Role: domain.RoleAdmin}

	for _, page := range domain.Pages {
		rec, called, err := runGate(t, admin, page)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !called {
			t.Fatalf("next handler not called for %s", page)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
}

func TestRequirePage_Forbids(t *testing.T) {
	registrar := &domain.User{ID: "2", Role: domain.RoleRegistrar}

	for _, page := range []domain.Page{domain.PageUsers, domain.PageSettings, domain.PageReports} {
		rec, called, err := runGate(t, registrar, page)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if called {
			t.Fatalf("next handler should not be called for %s", page)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["error"] != "Acesso não autorizado." {
			t.Fatalf("unexpected error body: %v", body)
		}
	}
}

func TestRequirePage_UnknownRole(t *testing.T) {
	_, called, err := runGate(t, &domain.User{ID: "9", Role: "Visitante"}, domain.PageDashboard)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if called {
		t.Fatalf("next handler should not be called")
	}
}

func TestRequirePage_WithoutSession(t *testing.T) {
	_, called, err := runGate(t, nil, domain.PageDashboard)
	if called {
		t.Fatalf("next handler should not be called")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
