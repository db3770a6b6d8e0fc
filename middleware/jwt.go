package middleware

import (
	"fmt"
	"strings"
	"time"

	"learnhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthSession is the typed identity carried by every authenticated
// request, populated once from the token claims at login.
type AuthSession struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"email":  email,
		"role":   role,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

func parseToken(tokenString string) (*AuthSession, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, fmt.Errorf("invalid token payload")
	}

	// JWT number claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}

	session := &AuthSession{UserID: uint(userID)}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}

	return session, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	session, err := parseToken(authHeader[len("Bearer "):])
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	c.Locals("session", session)

	// If valid, continue to the next handler
	return c.Next()
}

// OptionalJWTMiddleware populates the session when a valid token is
// present but lets anonymous requests through. Used on public catalog
// views that toggle enrollment state for logged-in users.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if session, err := parseToken(authHeader[len("Bearer "):]); err == nil {
			c.Locals("session", session)
		}
	}
	return c.Next()
}

// AdminOnly rejects any session whose role is not admin. It must run
// after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	session, ok := SessionFromCtx(c)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if session.Role != "admin" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access Denied: Admins only!", nil)
	}

	return c.Next()
}

// SessionFromCtx returns the authenticated session set by JWTMiddleware
func SessionFromCtx(c *fiber.Ctx) (*AuthSession, bool) {
	session, ok := c.Locals("session").(*AuthSession)
	return session, ok
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
