// Package auth is the authentication collaborator: fixture dashboard
// accounts, credential checks, and JWT issuance. Role gating happens in
// the route middleware; the core subsystems never consult it.
package auth

import (
	"errors"
	"time"

	"hotelops/models"
	"hotelops/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a bad username or password.
var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTTL = 12 * time.Hour

// Service authenticates dashboard users.
type Service interface {
	Login(username, password string) (models.User, string, error)
	CurrentUser(userID string) (models.User, bool)
}

// seedAccount is one demo credential pair.
type seedAccount struct {
	user     models.User
	password string
}

// demo accounts, mirroring the seeded dashboard roles
var seedAccounts = []seedAccount{
	{
		user: models.User{
			ID:       "admin1",
			Username: "admin",
			Name:     "Admin User",
			Role:     models.RoleAdmin,
		},
		password: "admin123",
	},
	{
		user: models.User{
			ID:       "gm1",
			Username: "gm",
			Name:     "Maria Gonzalez",
			Role:     models.RoleGM,
			Properties: []string{
				"hyatt-san-antonio-nw",
				"holiday-inn-san-antonio-nw",
			},
		},
		password: "gm123",
	},
	{
		user: models.User{
			ID:       "owner1",
			Username: "owner",
			Name:     "John Smith",
			Role:     models.RoleOwner,
			Properties: []string{
				"hyatt-san-antonio-nw",
				"holiday-inn-san-antonio-nw",
				"holiday-inn-stone-oak",
			},
		},
		password: "owner123",
	},
	{
		user: models.User{
			ID:         "staff1",
			Username:   "staff",
			Name:       "Jane Doe",
			Role:       models.RoleStaff,
			Department: models.DeptHousekeeping,
			Properties: []string{"hyatt-san-antonio-nw"},
		},
		password: "staff123",
	},
}

// DefaultAuthService holds the fixture accounts in memory.
type DefaultAuthService struct {
	byUsername map[string]models.User
	byID       map[string]models.User
}

// NewDefaultAuthService seeds the demo accounts, hashing their passwords
// with bcrypt at startup.
func NewDefaultAuthService() (*DefaultAuthService, error) {
	s := &DefaultAuthService{
		byUsername: make(map[string]models.User, len(seedAccounts)),
		byID:       make(map[string]models.User, len(seedAccounts)),
	}
	for _, acct := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u := acct.user
		u.PasswordHash = string(hash)
		s.byUsername[u.Username] = u
		s.byID[u.ID] = u
	}
	return s, nil
}

// Login checks credentials and issues a session token. The returned user
// never carries the password hash.
func (s *DefaultAuthService) Login(username, password string) (models.User, string, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), tokenTTL)
	if err != nil {
		return models.User{}, "", err
	}

	u.PasswordHash = ""
	return u, token, nil
}

// CurrentUser resolves a user id (typically from a validated token).
func (s *DefaultAuthService) CurrentUser(userID string) (models.User, bool) {
	u, ok := s.byID[userID]
	if !ok {
		return models.User{}, false
	}
	u.PasswordHash = ""
	return u, true
}
