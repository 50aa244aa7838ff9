package session

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrPasswordMismatch = errors.New("As senhas não coincidem")
	ErrMissingFields    = errors.New("Preencha todos os campos")
)

// RegisterForm is the account creation form.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f RegisterForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return ErrMissingFields
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Signup validates the form locally and only then calls Register.
func (m *Manager) Signup(ctx context.Context, form RegisterForm) Result {
	if err := form.Validate(); err != nil {
		return Result{Message: err.Error()}
	}
	return m.Register(ctx, strings.TrimSpace(form.Name), strings.TrimSpace(form.Email), form.Password)
}
