package auth

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredential учетные данные не переданы
	ErrMissingCredential = errors.New("credential required")
	// ErrInvalidCredential токен не прошел проверку
	ErrInvalidCredential = errors.New("invalid credential")
)

// AccessDeniedError роль вызывающего не входит в политику
type AccessDeniedError struct {
	Role    Role
	Policy  string
	Allowed []string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied for role %q: policy %q requires one of [%s]",
		e.Role.String(), e.Policy, strings.Join(e.Allowed, ", "))
}

// Authorize проверяет роль по политике
func Authorize(role Role, policy Policy) error {
	if policy.Allows(role) {
		return nil
	}
	return &AccessDeniedError{Role: role, Policy: policy.Name, Allowed: policy.AllowedRoles()}
}
