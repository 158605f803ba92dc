package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/models"
)

// Login authenticates against the backend and caches the profile for
// the session.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	p, err := a.auth.Login(ctx, username, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.profile = p
	fmt.Fprintf(a.out, "Logged in as %s\n", p.Username)
	return nil
}

// Register collects the signup form and creates an account. Password
// confirmation is checked before anything leaves the machine.
func (a *App) Register(ctx context.Context) error {
	var form models.SignupForm
	var err error

	if form.Username, err = GetSimpleText(a.reader, "Enter username", a.out); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if form.Location, err = GetSimpleText(a.reader, "Enter location", a.out); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if form.Password, err = GetPassword("Enter password", a.out); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(form.Password)
	if form.ConfirmPassword, err = GetPassword("Confirm password", a.out); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(form.ConfirmPassword)

	p, err := a.auth.Signup(ctx, form)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.profile = p
	fmt.Fprintf(a.out, "Account created, logged in as %s\n", p.Username)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("Logout error: %s", err.Error())
		return err
	}
	a.profile = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Profile prints the stored profile.
func (a *App) Profile(ctx context.Context) error {
	if a.profile == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "Username: %s\nEmail: %s\nLocation: %s\n",
		a.profile.Username, a.profile.Email, a.profile.Location)
	return nil
}

// UpdateProfile edits the stored profile. Empty input keeps the current
// value of a field.
func (a *App) UpdateProfile(ctx context.Context) error {
	if a.profile == nil {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}

	updated := *a.profile

	email, err := GetSimpleText(a.reader, fmt.Sprintf("Email [%s]", updated.Email), a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if email != "" {
		updated.Email = email
	}

	location, err := GetSimpleText(a.reader, fmt.Sprintf("Location [%s]", updated.Location), a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if location != "" {
		updated.Location = location
	}

	if err := a.auth.UpdateProfile(ctx, updated); err != nil {
		log.Printf("Profile update unsuccessful: %s", err.Error())
		return err
	}

	a.profile = &updated
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
