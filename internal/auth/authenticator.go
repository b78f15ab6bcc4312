package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/ventus-lab/ventus/internal/api/v1"
	"github.com/ventus-lab/ventus/internal/core/cache"
	httperr "github.com/ventus-lab/ventus/internal/core/errors"
	"github.com/ventus-lab/ventus/internal/core/storage"
	"github.com/ventus-lab/ventus/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidKey is returned for missing, malformed, unknown or inactive keys.
var ErrInvalidKey = errors.New("invalid or inactive API key")

const principalKey = "ventus.principal"

// lookupTimeout bounds a shared store lookup once it is detached from the
// request that started it.
const lookupTimeout = 5 * time.Second

// Principal is the authenticated caller of a request.
type Principal struct {
	APIKeyID int64
	UserID   int64
	Username string
}

// PrincipalFrom returns the principal stored by Middleware.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// Authenticator resolves bearer API keys against the credential store.
// Successful lookups are cached by key digest; misses are never cached.
type Authenticator struct {
	store  storage.CredentialStore
	cache  *cache.LRU[string, Principal]
	lookup singleflight.Group // Dedupe concurrent lookups of one key
}

// NewAuthenticator creates an Authenticator. A cacheSize of 0 disables caching.
func NewAuthenticator(store storage.CredentialStore, cacheSize int, cacheTTL time.Duration) *Authenticator {
	a := &Authenticator{store: store}
	if cacheSize > 0 {
		a.cache = cache.NewLRU[string, Principal](cacheSize, cacheTTL)
	}
	return a
}

// Authenticate resolves a plaintext key.
func (a *Authenticator) Authenticate(ctx context.Context, plain string) (Principal, error) {
	if plain == "" {
		return Principal{}, ErrInvalidKey
	}

	digest := HashKey(plain)
	if a.cache != nil {
		if p, ok := a.cache.Get(digest); ok {
			metrics.RecordAuthRequest("success", "cache")
			return p, nil
		}
	}

	v, err, _ := a.lookup.Do(digest, func() (interface{}, error) {
		// Callers sharing this lookup must not fail because the first one went away.
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()

		cred, err := a.store.LookupAPIKey(lookupCtx, digest)
		if errors.Is(err, storage.ErrNotFound) {
			metrics.RecordAuthRequest("rejected", "store")
			return Principal{}, ErrInvalidKey
		}
		if err != nil {
			metrics.RecordAuthRequest("error", "store")
			return Principal{}, fmt.Errorf("authenticate: %w", err)
		}

		p := Principal{APIKeyID: cred.APIKeyID, UserID: cred.UserID, Username: cred.Username}
		if a.cache != nil {
			a.cache.Put(digest, p)
		}
		metrics.RecordAuthRequest("success", "store")
		return p, nil
	})
	if err != nil {
		return Principal{}, err
	}
	return v.(Principal), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer <key>" header.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := a.Authenticate(c.Request.Context(), bearerToken(c.GetHeader("Authorization")))
		if errors.Is(err, ErrInvalidKey) {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthorizedError,
				Message:   "Invalid or inactive API key",
			})
			return
		}
		if err != nil {
			slog.Error("[Auth] API key lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to verify API key",
			})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RegisterRoutes registers GET /verify on an authenticated group.
func (a *Authenticator) RegisterRoutes(r gin.IRouter) {
	r.GET("/verify", a.HandleVerify)
}

// HandleVerify handles GET /api/v1/auth/verify
func (a *Authenticator) HandleVerify(c *gin.Context) {
	p, ok := PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnauthorizedError,
			Message:   "Invalid or inactive API key",
		})
		return
	}

	c.JSON(http.StatusOK, v1.VerifyResponse{
		Valid:    true,
		UserID:   p.UserID,
		Username: p.Username,
		Message:  "API key is valid",
	})
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
