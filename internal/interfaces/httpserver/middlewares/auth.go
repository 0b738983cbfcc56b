package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/HinduAI/Nara/internal/domain/user"
	authvalidator "github.com/HinduAI/Nara/internal/infrastructure/auth"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/responses"
)

const identityContextKey = "identity"

// AuthMiddleware validates JWT bearer tokens and stores the caller identity
// in the gin context.
func AuthMiddleware(validator *authvalidator.TokenValidator, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok, err := identityFromJWT(c, validator)
		if err != nil && !errors.Is(err, http.ErrNoCookie) {
			logger.Error().Err(err).Msg("jwt validation failed")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "unauthorized")
			return
		}
		if !ok {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, errors.New("authentication required"), "unauthorized")
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(c *gin.Context) (user.Identity, bool) {
	val, ok := c.Get(identityContextKey)
	if !ok {
		return user.Identity{}, false
	}
	identity, ok := val.(user.Identity)
	return identity, ok
}

func setIdentity(c *gin.Context, identity user.Identity) {
	c.Set(identityContextKey, identity)
	c.Request.Header.Set("X-User-Subject", identity.ExternalID)
	c.Writer.Header().Set("X-User-Subject", identity.ExternalID)
}

func identityFromJWT(c *gin.Context, validator *authvalidator.TokenValidator) (user.Identity, bool, error) {
	if validator == nil {
		return user.Identity{}, false, http.ErrNoCookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return user.Identity{}, false, http.ErrNoCookie
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return user.Identity{}, false, http.ErrNoCookie
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return user.Identity{}, false, http.ErrNoCookie
	}

	claims, err := validator.Validate(c.Request.Context(), token)
	if err != nil {
		return user.Identity{}, false, err
	}

	identity := user.Identity{ExternalID: claims.Subject}
	if claims.Email != "" {
		email := claims.Email
		identity.Email = &email
	}
	return identity, true, nil
}
