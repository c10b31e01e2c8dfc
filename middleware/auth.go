package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cppla/aiblog/models"
	"github.com/cppla/aiblog/utils"
)

// ContextPrincipalKey stores the resolved models.Principal inside Gin context.
const ContextPrincipalKey = "principal"

// LoadPrincipal resolves the bearer token to an account. Requests without a valid
// token, or whose account no longer exists, continue as models.AnonymousPrincipal.
func LoadPrincipal(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(ContextPrincipalKey, resolvePrincipal(ctx, db, secret))
		ctx.Next()
	}
}

func resolvePrincipal(ctx *gin.Context, db *gorm.DB, secret string) models.Principal {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return models.AnonymousPrincipal{}
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return models.AnonymousPrincipal{}
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return models.AnonymousPrincipal{}
	}

	claims, err := utils.ParseToken(secret, tokenString)
	if err != nil {
		utils.L().Debug("rejected session token", zap.Error(err))
		return models.AnonymousPrincipal{}
	}

	account, err := models.LoadAccount(db, claims.AccountID)
	if err != nil {
		utils.L().Debug("session account not loaded", zap.Uint("account_id", claims.AccountID), zap.Error(err))
		return models.AnonymousPrincipal{}
	}
	return account
}

// CurrentPrincipal returns the principal stored by LoadPrincipal, or an anonymous one.
func CurrentPrincipal(ctx *gin.Context) models.Principal {
	if v, ok := ctx.Get(ContextPrincipalKey); ok {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	return models.AnonymousPrincipal{}
}

// CurrentAccount returns the logged-in account, if any.
func CurrentAccount(ctx *gin.Context) (*models.Account, bool) {
	a, ok := CurrentPrincipal(ctx).(*models.Account)
	return a, ok
}

// IsSecure reports whether the request arrived over TLS, directly or behind a proxy.
func IsSecure(ctx *gin.Context) bool {
	if ctx.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(ctx.GetHeader("X-Forwarded-Proto"), "https")
}

// AuthRequired rejects anonymous requests. Must run after LoadPrincipal.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !CurrentPrincipal(ctx).IsAuthenticated() {
			utils.Abort(ctx, http.StatusUnauthorized, 40101, "login required")
			return
		}
		ctx.Next()
	}
}

// AdminRequired rejects principals without administrative capability.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !CurrentPrincipal(ctx).IsAdministrator() {
			utils.Abort(ctx, http.StatusForbidden, 40301, "administrator only")
			return
		}
		ctx.Next()
	}
}
