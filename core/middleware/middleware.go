package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"interview-planner/core/config"
	"interview-planner/core/constants"
	"interview-planner/core/errors"
	"interview-planner/core/logger"
	"interview-planner/core/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	tokenSecret string
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{tokenSecret: cfg.Auth.TokenSecret}
}

// RequestID tags every request with a short identifier, echoed back in the
// response header and attached to the request log line.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(constants.RequestIDHeader)
			if requestID == "" {
				requestID = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, requestID)
			c.Response().Header().Set(constants.RequestIDHeader, requestID)

			err := next(c)

			logger.Info("Request",
				"request_id", requestID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
			)
			return err
		}
	}
}

// AuthMiddleware validates the HS256 bearer token on private routes. With an
// empty AUTH_TOKEN_SECRET authentication is disabled (local development).
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.tokenSecret == "" {
				return next(c)
			}

			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return unauthorized(c, errors.ErrMissingAuthorizationHeader, "missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(m.tokenSecret), nil
			})
			if err != nil {
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return unauthorized(c, errors.ErrTokenExpired, "token expired")
				}
				return unauthorized(c, errors.ErrInvalidTokenFormat, "invalid token")
			}
			if !token.Valid {
				return unauthorized(c, errors.ErrInvalidTokenFormat, "invalid token")
			}

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, code errors.ErrorCode, message string) error {
	logger.Warn("AuthMiddleware:Rejected",
		"code", code,
		"path", c.Request().URL.Path,
	)
	return c.JSON(http.StatusUnauthorized, errors.NewAppError(code, message, nil))
}
