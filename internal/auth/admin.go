package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"menuhub/pkg/utils"
)

// Admin is the single operator principal. The configured password is hashed
// once at startup so the plaintext never sticks around past construction.
type Admin struct {
	Username string
	Email    string

	passwordHash []byte
}

func NewAdmin(cfg utils.AuthConfig) (*Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Admin{
		Username:     strings.TrimSpace(cfg.AdminUsername),
		Email:        strings.TrimSpace(strings.ToLower(cfg.AdminEmail)),
		passwordHash: hash,
	}, nil
}

// Authenticate accepts the username or email, case-insensitively.
func (a *Admin) Authenticate(login, password string) bool {
	login = strings.TrimSpace(strings.ToLower(login))
	if login == "" || password == "" {
		return false
	}
	if login != strings.ToLower(a.Username) && login != a.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
}
