package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/clinic-admin-api/internal/domain"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
)

// AuthError identifica o usuário e o perfil envolvidos na recusa de acesso
type AuthError struct {
	Err     error
	UserID  int
	RoleID  int
	Details string
}

func (e *AuthError) Error() string {
	msg := e.Err.Error()
	if e.UserID != 0 {
		msg = fmt.Sprintf("usuário %d (perfil %d): %s", e.UserID, e.RoleID, msg)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError indica se o erro deve ser respondido como recusa de acesso
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrUserDisabled)
}

func NewAuthError(baseErr error, details string) *AuthError {
	return &AuthError{Err: baseErr, Details: details}
}

func newClaimsError(baseErr error, claims *domain.Claims, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		UserID:  claims.UserID,
		RoleID:  claims.UserRoleID,
		Details: details,
	}
}

// CheckRole recusa claims ausentes ou cujo perfil não está entre os permitidos
func CheckRole(claims *domain.Claims, allowedRoles ...int) error {
	if claims == nil {
		return NewAuthError(ErrInvalidToken, "usuário não autenticado")
	}

	for _, role := range allowedRoles {
		if claims.UserRoleID == role {
			return nil
		}
	}

	return newClaimsError(ErrInsufficientPrivilege, claims, fmt.Sprintf("perfis permitidos %v", allowedRoles))
}
