package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

func runAdminSecret(configured string, header *string) (bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/pending", nil)
	if header != nil {
		req.Header.Set(HeaderAdminToken, *header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := AdminSecret(configured)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return called, err
}

func TestAdminSecret_Accepts(t *testing.T) {
	v := "s3cret-Value"
	called, err := runAdminSecret("s3cret-Value", &v)
	if err != nil || !called {
		t.Fatalf("expected pass-through, err=%v called=%v", err, called)
	}
}

func TestAdminSecret_Rejects(t *testing.T) {
	values := []string{"", "s3cret-value", "S3CRET-VALUE", "s3cret-Value ", " s3cret-Value", "s3cret", "s3cret-Value-extra"}
	for _, v := range values {
		v := v
		called, err := runAdminSecret("s3cret-Value", &v)
		if called {
			t.Fatalf("value %q: should not reach next", v)
		}
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("value %q: expected ErrForbidden, got %v", v, err)
		}
	}

	if called, err := runAdminSecret("s3cret-Value", nil); called || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("missing header: expected ErrForbidden, got %v", err)
	}
}

func TestAdminSecret_EmptyConfiguredSecretRejectsAll(t *testing.T) {
	empty := ""
	if called, err := runAdminSecret("", &empty); called || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
