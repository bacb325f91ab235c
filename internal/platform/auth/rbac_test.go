package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runWithRoles(roles []string, required ...string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(withUser(context.Background(), "u", roles))
	c := e.NewContext(req, httptest.NewRecorder())
	return RequireRole(required...)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
}

func TestRequireRole_Allowed(t *testing.T) {
	if err := runWithRoles([]string{"nurse"}, "physician", "nurse"); err != nil {
		t.Errorf("expected nurse to pass, got %v", err)
	}
}

func TestRequireRole_Denied(t *testing.T) {
	err := runWithRoles([]string{"registrar"}, "physician", "nurse")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireRole_AdminBypass(t *testing.T) {
	if err := runWithRoles([]string{"admin"}, "physician"); err != nil {
		t.Errorf("expected admin to pass, got %v", err)
	}
}

func TestRequireRole_NoRoles(t *testing.T) {
	if err := runWithRoles(nil, "nurse"); err == nil {
		t.Error("expected anonymous request to be rejected")
	}
}
