package services

import (
	"campo-cidade/app/server/images"
	"campo-cidade/app/server/inits"
	"campo-cidade/app/server/models"
	"campo-cidade/app/server/session"
	"context"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"path/filepath"
	"testing"
)

func newServices(t *testing.T) *Services {
	t.Helper()
	root := t.TempDir()

	db, err := inits.DB(filepath.Join(root, "database.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	imgs, err := images.New(filepath.Join(root, "uploads"), filepath.Join(root, "imagens"))
	require.NoError(t, err)

	return New(zaptest.NewLogger(t), db, imgs)
}

func registerUser(t *testing.T, s *Services, name string, email string) *models.User {
	t.Helper()
	age := 30
	user, err := s.Register(context.Background(), RegisterInput{
		Name:            name,
		Age:             &age,
		Phone:           "61999990000",
		Address:         "Rua das Flores, 1",
		Email:           email,
		Password:        "senha-" + name,
		ConfirmPassword: "senha-" + name,
	})
	require.NoError(t, err)
	return user
}

func bootstrapAdmin(t *testing.T, s *Services) session.Identity {
	t.Helper()
	_, err := s.BootstrapAdmin(context.Background(), "ADM@123", "123456")
	require.NoError(t, err)

	admin, err := s.Login(context.Background(), "ADM@123", "123456")
	require.NoError(t, err)
	return identityOf(admin)
}

func identityOf(u *models.User) session.Identity {
	return session.Identity{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

func gardenInput(name string) GardenInput {
	return GardenInput{
		Name:          name,
		Species:       "Tomato",
		DaysToHarvest: 60,
		Address:       "Quadra 5",
		ContactName:   "Ana",
		ContactEmail:  "ana@campo.br",
	}
}

func countUsers(t *testing.T, s *Services) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&n).Error)
	return n
}
