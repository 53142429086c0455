package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-admin-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	// TokenCookie é o cookie aceito como alternativa ao header Authorization
	TokenCookie = "token"
)

// Rotas que não exigem autenticação
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := extractToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de acesso é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				writeAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retorna as claims do usuário autenticado
func UserFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}

func extractToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}
		return tokenString, true
	}

	cookie, err := r.Cookie(TokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case !authenticating.IsAuthorizationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao verificar acesso", nil)
	case errors.Is(err, authenticating.ErrInsufficientPrivilege):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
	case errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Conta desativada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
	}
}
