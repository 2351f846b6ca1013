package security

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRoleOrdering(t *testing.T) {
	admin := AuthContext{Role: RoleAdmin}
	editor := AuthContext{Role: RoleEditor}
	reader := AuthContext{Role: RoleReader}

	assert.True(t, HasRole(admin, RoleEditor))
	assert.True(t, HasRole(editor, RoleEditor))
	assert.True(t, HasRole(editor, RoleReader))
	assert.False(t, HasRole(reader, RoleEditor))
	assert.False(t, HasRole(AuthContext{Role: "BOGUS"}, RoleReader))
}

func TestReadSecretFailsClosed(t *testing.T) {
	viper.Set("security.jwt_secret", "")
	_, err := ReadSecret()
	assert.Error(t, err)

	viper.Set("security.jwt_secret", "test-secret")
	secret, err := ReadSecret()
	assert.NoError(t, err)
	assert.Equal(t, "test-secret", secret)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestExtractAuthContext(t *testing.T) {
	const secret = "test-secret"

	app := fiber.New()
	var got AuthContext
	var gotErr error
	app.Get("/probe", func(c *fiber.Ctx) error {
		got, gotErr = ExtractAuthContext(c, secret)
		return c.SendStatus(fiber.StatusOK)
	})

	token := signToken(t, secret, jwt.MapClaims{"uid": 7, "name": "jane", "role": "EDITOR"})

	req := httptest.NewRequest(fiber.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	_, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "jane", got.Name)
	assert.Equal(t, RoleEditor, got.Role)

	// Wrong secret must be rejected.
	req = httptest.NewRequest(fiber.MethodGet, "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "other-secret", jwt.MapClaims{"uid": 7}))
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Error(t, gotErr)

	// No credentials at all.
	req = httptest.NewRequest(fiber.MethodGet, "/probe", nil)
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Error(t, gotErr)
}

func TestGateRejectsInsufficientRole(t *testing.T) {
	const secret = "test-secret"

	app := fiber.New()
	app.Get("/guarded", Gate(secret, RoleEditor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, secret, jwt.MapClaims{"uid": 1, "role": "READER"}))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, secret, jwt.MapClaims{"uid": 1, "role": "ADMIN"}))
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
