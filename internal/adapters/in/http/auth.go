package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/ports"
	"purchasing/internal/generated/servers"
	"purchasing/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	actorKey        = "actor"
	tokenPath       = "/api/v1/auth/token"
	DefaultTokenTTL = 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator issues and checks HS256 bearer tokens. The subject is the
// user id.
type Authenticator struct {
	users  ports.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthenticator(users ports.UserRepository, secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authenticator{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Login checks the password and returns a signed token with its expiry.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expires, err := a.Sign(u.ID())
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

func (a *Authenticator) Sign(userID kernel.UUID) (string, time.Time, error) {
	now := a.now()
	expires := now.Add(a.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Verify returns the user id carried by a valid token.
func (a *Authenticator) Verify(tokenString string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("token error: %w", err)
	}
	if !token.Valid {
		return kernel.UUID{}, errors.New("token is not valid")
	}
	return kernel.UUIDFromString(claims.Subject)
}

// Middleware requires a valid bearer token on every API route except the
// token endpoint, and stores the actor in the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Path(), "/api/") || c.Path() == tokenPath {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "Authorization header is missing")
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return unauthorized(c, "Invalid token format")
			}

			actor, err := a.Verify(tokenString)
			if err != nil {
				return unauthorized(c, "Invalid token")
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// IssueToken handles POST /api/v1/auth/token.
func (s *Server) IssueToken(ctx echo.Context) error {
	var body servers.IssueTokenJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	token, expires, err := s.auth.Login(ctx.Request().Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return unauthorized(ctx, "Invalid username or password")
		}
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expires.UTC(),
	})
}

func actorFrom(c echo.Context) (kernel.UUID, error) {
	actor, ok := c.Get(actorKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return actor, nil
}
