package security

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

type Role string

const (
	RoleReader Role = "READER"
	RoleEditor Role = "EDITOR"
	RoleAdmin  Role = "ADMIN"
)

// Roles form an ordered capability set; a higher role implies the lower ones.
var roleRank = map[Role]int{
	RoleReader: 0,
	RoleEditor: 1,
	RoleAdmin:  2,
}

type AuthContext struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

func HasRole(ctx AuthContext, required Role) bool {
	have, ok := roleRank[ctx.Role]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// ReadSecret fails closed: there is deliberately no built-in fallback value
// for the signing secret.
func ReadSecret() (string, error) {
	secret := viper.GetString("security.jwt_secret")
	if secret == "" {
		return "", fmt.Errorf("security.jwt_secret is not configured")
	}
	return secret, nil
}

// ExtractAuthContext reads the bearer header (or the identity cookie as a
// fallback) and verifies it against the configured secret.
func ExtractAuthContext(c *fiber.Ctx, secret string) (AuthContext, error) {
	var ctx AuthContext

	raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if raw == "" || raw == c.Get(fiber.HeaderAuthorization) {
		raw = c.Cookies("identity")
	}
	if raw == "" {
		return ctx, fmt.Errorf("no credentials provided")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid token: %v", err)
	}

	if uid, ok := claims["uid"].(float64); ok {
		ctx.UserID = uint(uid)
	}
	if name, ok := claims["name"].(string); ok {
		ctx.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		ctx.Role = Role(role)
	}
	return ctx, nil
}

// Gate returns a middleware requiring the given role or above. The resolved
// context is stored in locals under "auth" for the handlers behind it.
func Gate(secret string, required Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, err := ExtractAuthContext(c, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		if !HasRole(ctx, required) {
			return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("requires %s role", required))
		}
		c.Locals("auth", ctx)
		return c.Next()
	}
}
