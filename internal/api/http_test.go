package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/models"
)

func TestHTTPClient_ListReports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/disasters", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(common.RequestIDHeaderName))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Report{
			{ID: "1", Type: models.ReportTypeFlood, Location: "Riverside", Username: "maria", Image: "https://cdn.example.com/a.jpg"},
			{ID: "2", Type: models.ReportTypeFire, Location: "Hillside", Username: "Anonymous"},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL + "/api")
	reports, err := client.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, models.ReportTypeFlood, reports[0].Type)
	assert.Equal(t, "https://cdn.example.com/a.jpg", reports[0].Image)
}

func TestHTTPClient_ListReports_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.ListReports(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFetch))
	assert.True(t, errors.Is(err, common.ErrUnavailable))
}

func TestHTTPClient_ListReports_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens here anymore

	client := NewHTTPClient(srv.URL)
	_, err := client.ListReports(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnavailable))
}

func TestHTTPClient_CreateReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/disasters", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.Report
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Empty(t, in.ID)
		assert.Equal(t, "https://cdn.example.com/a.jpg", in.Image)

		in.ID = "77"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	created, err := client.CreateReport(context.Background(), models.Report{
		ID:       "stale-id", // must never reach the backend
		Type:     models.ReportTypeFlood,
		Location: "Riverside",
		Image:    "https://cdn.example.com/a.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "77", created.ID)
}

func TestHTTPClient_UpdateReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/disasters/42", r.URL.Path)

		var in models.Report
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "42"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	updated, err := client.UpdateReport(context.Background(), "42", models.Report{Type: models.ReportTypeFire})
	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID)
}

func TestHTTPClient_DeleteReport(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/disasters/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	require.NoError(t, client.DeleteReport(context.Background(), "42"))
	assert.True(t, called)
}

func TestHTTPClient_DeleteReport_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	err := client.DeleteReport(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestHTTPClient_UploadMedia(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/disasters/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, hdr, err := r.FormFile("media")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "photo.jpg", hdr.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/photo.jpg"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	url, err := client.UploadMedia(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", url)
}

func TestHTTPClient_UploadMedia_MissingURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.UploadMedia(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpload))
}

func TestHTTPClient_UploadMedia_FileMissing(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:0")
	_, err := client.UploadMedia(context.Background(), "/no/such/file.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpload))
}

func TestHTTPClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "maria", in["username"])
		assert.Equal(t, "secret", in["password"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"profile": models.Profile{Username: "maria", Email: "m@example.com", Location: "Riverside"},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	profile, err := client.Login(context.Background(), "maria", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "maria", profile.Username)
	assert.Equal(t, "m@example.com", profile.Email)
}

func TestHTTPClient_Login_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "success false with 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "bad credentials"})
			},
		},
		{
			name: "401 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "bad credentials"})
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := NewHTTPClient(srv.URL)
			_, err := client.Login(context.Background(), "maria", []byte("wrong"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrUnauthorized))
			assert.Contains(t, err.Error(), "bad credentials")
		})
	}
}

func TestHTTPClient_Signup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/signup", r.URL.Path)

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "maria", in["username"])
		assert.Equal(t, "m@example.com", in["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	err := client.Signup(context.Background(), "maria", "m@example.com", "Riverside", []byte("secret"))
	require.NoError(t, err)
}

func TestHTTPClient_UpdateProfile_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/update", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "username taken"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	err := client.UpdateProfile(context.Background(), models.Profile{Username: "maria"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSubmission))
	assert.Contains(t, err.Error(), "username taken")
}
