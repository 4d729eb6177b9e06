package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"stokship/internal/domain/deal"
	"stokship/internal/handler/httperr"
	"stokship/internal/pkg/errs"
	"stokship/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator verifies bearer tokens minted by the external auth service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxActorKey = "actor"

var errUnauthenticated = errs.New("unauthenticated")

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// RequireAuth resolves the bearer token into a deal.Actor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		actor, err := deal.ActorFromRole(claims.Role, claims.UserID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown role", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireKinds rejects actors outside kinds. Use after RequireAuth.
func (m *AuthMiddleware) RequireKinds(kinds ...deal.ActorKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
			return
		}
		for _, k := range kinds {
			if actor.Kind == k {
				c.Next()
				return
			}
		}
		httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbiddenActor, "Insufficient permissions", nil)
	}
}

func GetActor(c *gin.Context) (deal.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return deal.Actor{}, false
	}
	actor, ok := v.(deal.Actor)
	return actor, ok
}
