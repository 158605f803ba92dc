// Package api implements the REST client for the disaster-reporting
// backend. The backend owns report ids and all authoritative state; this
// client only moves JSON and multipart bodies.
package api

import (
	"context"

	"github.com/bramapp/bram/internal/models"
)

// Client is the consumed backend contract.
type Client interface {
	// ListReports fetches the full report collection.
	ListReports(ctx context.Context) ([]models.Report, error)

	// CreateReport submits a new report (id must be empty) and returns
	// the created record with its backend-assigned id.
	CreateReport(ctx context.Context, r models.Report) (*models.Report, error)

	// UpdateReport replaces the report addressed by id.
	UpdateReport(ctx context.Context, id string, r models.Report) (*models.Report, error)

	// DeleteReport removes the report addressed by id.
	DeleteReport(ctx context.Context, id string) error

	// UploadMedia posts a local media file as multipart form data and
	// returns the URL the backend stored it under.
	UploadMedia(ctx context.Context, path string) (string, error)

	// Login authenticates and returns the user's profile.
	Login(ctx context.Context, username string, password []byte) (*models.Profile, error)

	// Signup registers a new account.
	Signup(ctx context.Context, username, email, location string, password []byte) error

	// UpdateProfile pushes changed profile fields to the backend.
	UpdateProfile(ctx context.Context, p models.Profile) error

	// Ping checks backend reachability.
	Ping(ctx context.Context) error
}
