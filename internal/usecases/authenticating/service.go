package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/clinic-admin-api/internal/config"
	"github.com/vfg2006/clinic-admin-api/internal/domain"
)

const defaultTokenTTL = 12 * time.Hour

// Authenticator emite e valida os tokens de acesso da área administrativa.
// Os usuários são cadastrados por outro serviço; aqui só existe o token.
type Authenticator interface {
	IssueToken(claims *domain.Claims) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secret: []byte(cfg.SecretKey),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) IssueToken(claims *domain.Claims) (string, error) {
	if claims == nil || claims.UserID == 0 || claims.UserRoleID == 0 {
		return "", NewAuthError(ErrMissingRequiredData, "ID do usuário e perfil são obrigatórios")
	}

	issued := *claims
	now := s.now()
	issued.IssuedAt = jwt.NewNumericDate(now)
	issued.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, issued)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, "")
	}

	if !claims.UserActive {
		return nil, newClaimsError(ErrUserDisabled, claims, "conta desativada")
	}

	return claims, nil
}
