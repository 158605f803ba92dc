// Package services contains application services for the B.R.A.M.
// client. This file defines the authentication service: login, signup,
// profile updates, liveness probe, and local session housekeeping.
package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bramapp/bram/internal/api"
	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/models"
	"github.com/bramapp/bram/internal/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and persist the profile.
//   - Signup: validate and register a new account, then persist.
//   - UpdateProfile: push changed fields to the backend, then persist.
//   - Logout: clear the local session.
//   - Current: the persisted profile, nil when logged out.
//   - Ping: check backend liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Profile, error)
	Signup(ctx context.Context, form models.SignupForm) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Profile, error)
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API
// client and the local session store.
type authService struct {
	client   api.Client
	sessions *session.Store
}

func NewAuthService(client api.Client, sessions *session.Store) AuthService {
	return &authService{client: client, sessions: sessions}
}

// Login authenticates against the backend and saves the returned
// profile locally so authorship attribution survives restarts.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Profile, error) {
	p, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Save(ctx, *p); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return p, nil
}

// Signup validates the registration form, creates the account, and
// persists the resulting profile.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) (*models.Profile, error) {
	var missing []string
	if strings.TrimSpace(form.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(form.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(form.Location) == "" {
		missing = append(missing, "location")
	}
	if len(form.Password) == 0 {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", common.ErrValidation, strings.Join(missing, ", "))
	}
	if !bytes.Equal(form.Password, form.ConfirmPassword) {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	if err := a.client.Signup(ctx, form.Username, form.Email, form.Location, form.Password); err != nil {
		return nil, fmt.Errorf("signup error: %w", err)
	}

	p := models.Profile{Username: form.Username, Email: form.Email, Location: form.Location}
	if err := a.sessions.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &p, nil
}

// UpdateProfile pushes the change to the backend and mirrors it locally.
func (a *authService) UpdateProfile(ctx context.Context, p models.Profile) error {
	if err := a.client.UpdateProfile(ctx, p); err != nil {
		return fmt.Errorf("profile update error: %w", err)
	}
	if err := a.sessions.Save(ctx, p); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// Logout wipes the locally stored session profile.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// Current returns the persisted profile, nil when logged out.
func (a *authService) Current(ctx context.Context) (*models.Profile, error) {
	return a.sessions.Load(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
