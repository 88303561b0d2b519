package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func invokeAdminOnly(t *testing.T, claims interface{}) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("claims", claims)
	}

	handler := NewAdminMiddleware().AdminOnly(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAdminOnlyAllowsBooleanTrueClaim(t *testing.T) {
	err := invokeAdminOnly(t, map[string]interface{}{"admin": true})
	assert.NoError(t, err)
}

func TestAdminOnlyRejectsStringTrueClaim(t *testing.T) {
	err := invokeAdminOnly(t, map[string]interface{}{"admin": "true"})

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAdminOnlyRejectsAdminRoleListEntry(t *testing.T) {
	err := invokeAdminOnly(t, map[string]interface{}{
		"roles": []interface{}{"admin"},
	})

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAdminOnlyRejectsFalseClaim(t *testing.T) {
	err := invokeAdminOnly(t, map[string]interface{}{"admin": false})

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAdminOnlyRequiresAuthentication(t *testing.T) {
	err := invokeAdminOnly(t, nil)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
