package usecase

import (
	"context"
	"testing"
	"time"

	"ora-booking/internal/data/entity"
	"ora-booking/internal/dto/request"
	"ora-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, d *testDeps, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:         "Operator",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     active,
	}
	d.users.users[user.ID] = user
	return user
}

func TestLoginCreatesSession(t *testing.T) {
	d := newTestDeps()
	seedUser(t, d, "admin@example.com", "s3cret-pass", true)

	resp, err := d.authService().Login(context.Background(), "curl/8", "10.0.0.1", &request.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.True(t, resp.ExpiresAt.After(time.Now().Add(23*time.Hour)))

	session, err := d.sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, session.UserAgent)
	assert.Equal(t, "curl/8", *session.UserAgent)
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	d := newTestDeps()
	seedUser(t, d, "admin@example.com", "s3cret-pass", true)
	seedUser(t, d, "retired@example.com", "s3cret-pass", false)

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "ghost@example.com", "s3cret-pass"},
		{"wrong password", "admin@example.com", "wrong-pass-1"},
		{"inactive user", "retired@example.com", "s3cret-pass"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := d.authService().Login(context.Background(), "", "", &request.LoginRequest{
				Email:    c.email,
				Password: c.pass,
			})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	d := newTestDeps()
	seedUser(t, d, "admin@example.com", "s3cret-pass", true)

	resp, err := d.authService().Login(context.Background(), "", "", &request.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, d.authService().Logout(context.Background(), resp.Token))

	session, err := d.sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
