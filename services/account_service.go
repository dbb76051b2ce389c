package services

import (
	"hr-dashboard-server/utils"
)

// Account is a dashboard login identity. There is no user database; the only
// accounts are the two fixed credential pairs below.
type Account struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	passwordHash string
}

// mockCredentials are the fixed email/password pairs gating the dashboard.
var mockCredentials = []struct {
	id       uint
	name     string
	email    string
	password string
	role     string
}{
	{1, "HR Admin", "admin@hr.com", "admin123", "admin"},
	{2, "HR User", "user@hr.com", "user123", "user"},
}

// AccountService authenticates against the mocked credential table. The
// plaintext passwords are hashed once at construction so login still goes
// through a real bcrypt comparison.
type AccountService struct {
	accounts []Account
}

// NewAccountService builds the credential table.
func NewAccountService() (*AccountService, error) {
	as := &AccountService{}
	for _, c := range mockCredentials {
		hash, err := utils.HashPassword(c.password)
		if err != nil {
			return nil, err
		}
		as.accounts = append(as.accounts, Account{
			ID:           c.id,
			Name:         c.name,
			Email:        c.email,
			Role:         c.role,
			passwordHash: hash,
		})
	}
	return as, nil
}

// Authenticate checks the credential pair and returns the matching account.
func (as *AccountService) Authenticate(email, password string) (Account, bool) {
	for _, a := range as.accounts {
		if a.Email == email && utils.CheckPasswordHash(password, a.passwordHash) {
			return a, true
		}
	}
	return Account{}, false
}

// ByID looks up an account by identifier.
func (as *AccountService) ByID(id uint) (Account, bool) {
	for _, a := range as.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
