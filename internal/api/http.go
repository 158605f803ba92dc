package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks JSON over HTTP to the backend. Report endpoints live
// under {base}/disasters, auth endpoints under {base} directly.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool           `json:"success"`
	Profile models.Profile `json:"profile"`
	Message string         `json:"message,omitempty"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Password string `json:"password"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (c *HTTPClient) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := c.doJSON(ctx, http.MethodGet, "/disasters", nil, &reports); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetch, err)
	}
	return reports, nil
}

func (c *HTTPClient) CreateReport(ctx context.Context, r models.Report) (*models.Report, error) {
	r.ID = ""
	var created models.Report
	if err := c.doJSON(ctx, http.MethodPost, "/disasters", r, &created); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSubmission, err)
	}
	return &created, nil
}

func (c *HTTPClient) UpdateReport(ctx context.Context, id string, r models.Report) (*models.Report, error) {
	r.ID = ""
	var updated models.Report
	if err := c.doJSON(ctx, http.MethodPut, "/disasters/"+id, r, &updated); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSubmission, err)
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteReport(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/disasters/"+id, nil, nil); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSubmission, err)
	}
	return nil
}

// UploadMedia posts the file under the "media" form field, the way the
// backend's upload endpoint expects it. Returns the stored URL.
func (c *HTTPClient) UploadMedia(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open media: %w", common.ErrUpload, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("media", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("%w: read media: %w", common.ErrUpload, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/disasters/upload", &body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, mapTransportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, statusError(resp))
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", common.ErrUpload, err)
	}
	if ur.URL == "" {
		return "", fmt.Errorf("%w: backend returned no media URL", common.ErrUpload)
	}
	return ur.URL, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.Profile, error) {
	reqBody := loginRequest{Username: username, Password: string(password)}
	var lr loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", reqBody, &lr); err != nil {
		return nil, err
	}
	if !lr.Success {
		return nil, fmt.Errorf("%w: %s", common.ErrUnauthorized, orUnknown(lr.Message))
	}
	return &lr.Profile, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, location string, password []byte) error {
	reqBody := signupRequest{Username: username, Email: email, Location: location, Password: string(password)}
	var sr statusResponse
	if err := c.doJSON(ctx, http.MethodPost, "/signup", reqBody, &sr); err != nil {
		return err
	}
	if !sr.Success {
		return fmt.Errorf("%w: %s", common.ErrSubmission, orUnknown(sr.Message))
	}
	return nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p models.Profile) error {
	var sr statusResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/update", p, &sr); err != nil {
		return err
	}
	if !sr.Success {
		return fmt.Errorf("%w: %s", common.ErrSubmission, orUnknown(sr.Message))
	}
	return nil
}

// Ping reuses the report listing as a cheap liveness probe; the backend
// exposes no dedicated health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/disasters", nil, nil)
}

// doJSON performs one round-trip: optional JSON request body, status
// check, optional JSON response decode into out (skipped when out is nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps a non-2xx response to a sentinel, keeping the first
// chunk of the body for the user-facing message.
func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(b))
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mt == "application/json" {
		var sr statusResponse
		if json.Unmarshal(b, &sr) == nil && sr.Message != "" {
			msg = sr.Message
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, orUnknown(msg))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, orUnknown(msg))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: http %d: %s", common.ErrUnavailable, resp.StatusCode, orUnknown(msg))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode, orUnknown(msg))
	}
}

// mapTransportError classifies dial/timeout failures as server
// unavailability so callers can fall back (e.g. offline messaging).
func mapTransportError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
}

func orUnknown(msg string) string {
	if msg == "" {
		return "unknown error"
	}
	return msg
}
