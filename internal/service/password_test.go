package service

import (
	"errors"
	"testing"

	"hopebridge/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePassword() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePassword)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateAdmin(t *testing.T) {
	t.Cleanup(restorePassword)
	hash, _ := HashPassword("pw")
	admin := model.AdminUser{PasswordHash: hash, IsActive: true}

	require.NoError(t, AuthenticateAdmin(admin, "pw"))
	require.Error(t, AuthenticateAdmin(admin, "bad"))

	admin.IsActive = false
	require.Error(t, AuthenticateAdmin(admin, "pw"))
}
