package auth

import (
	"testing"

	"hotelops/models"
	"hotelops/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ValidCredentials(t *testing.T) {
	svc, err := NewDefaultAuthService()
	require.NoError(t, err)

	user, token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.PasswordHash)
	require.NotEmpty(t, token)

	sub, role, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", sub)
	assert.Equal(t, "admin", role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, err := NewDefaultAuthService()
	require.NoError(t, err)

	_, _, err = svc.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, err := NewDefaultAuthService()
	require.NoError(t, err)

	_, _, err = svc.Login("ghost", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	svc, err := NewDefaultAuthService()
	require.NoError(t, err)

	u, ok := svc.CurrentUser("staff1")
	require.True(t, ok)
	assert.Equal(t, models.RoleStaff, u.Role)
	assert.Equal(t, models.DeptHousekeeping, u.Department)
	assert.Empty(t, u.PasswordHash)

	_, ok = svc.CurrentUser("missing")
	assert.False(t, ok)
}
