package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/logging"
	"github.com/bramapp/bram/internal/models"
)

// MediaUploader uploads a local media file and returns the URL it was
// stored under.
type MediaUploader interface {
	UploadMedia(ctx context.Context, path string) (string, error)
}

// ProfileSource yields the current session profile, nil when logged out.
type ProfileSource interface {
	Load(ctx context.Context) (*models.Profile, error)
}

// Controller orchestrates the feed: refresh ticks, per-category
// acknowledgement, submissions, and the unread badge. Unread state is
// always derived from the store and tracker, never pushed.
type Controller struct {
	store    *ReportStore
	seen     *SeenTracker
	flag     *NotificationFlag
	uploader MediaUploader
	profiles ProfileSource
	notifier Notifier
	log      logging.Logger

	now func() time.Time // test seam
}

func NewController(store *ReportStore, seen *SeenTracker, flag *NotificationFlag,
	uploader MediaUploader, profiles ProfileSource, notifier Notifier, log logging.Logger) *Controller {
	return &Controller{
		store:    store,
		seen:     seen,
		flag:     flag,
		uploader: uploader,
		profiles: profiles,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// OnRefreshTick refreshes the snapshot. Nothing else: unread state is
// derived at read time.
func (c *Controller) OnRefreshTick(ctx context.Context) error {
	return c.store.Refresh(ctx)
}

// OnCategoryOpened acknowledges the category at its current size and
// returns its reports for display. Immediately afterwards Unread for the
// category is false, absent concurrent submissions.
func (c *Controller) OnCategoryOpened(t models.ReportType) []models.Report {
	reports := c.store.ByCategory(t)
	c.seen.Acknowledge(t, len(reports))
	return reports
}

// Unread reports whether the category holds reports the user has not
// acknowledged yet.
func (c *Controller) Unread(t models.ReportType) bool {
	return len(c.store.ByCategory(t)) > c.seen.CountFor(t)
}

// Flag exposes the shared unread-activity flag.
func (c *Controller) Flag() *NotificationFlag {
	return c.flag
}

// Store exposes the underlying snapshot store for read-only rendering.
func (c *Controller) Store() *ReportStore {
	return c.store
}

// Submit validates the form, uploads local media if any, and creates a
// new report (editID empty) or updates an existing one. On success the
// unread flag is set, the snapshot is refreshed, and the user is
// notified. Steps run strictly in that order.
func (c *Controller) Submit(ctx context.Context, form models.ReportForm, editID string) (*models.Report, error) {
	if missing := form.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", common.ErrValidation, strings.Join(missing, ", "))
	}

	mediaURL := form.Media
	if isLocalMedia(form.Media) {
		url, err := c.uploader.UploadMedia(ctx, form.Media)
		if err != nil {
			return nil, err
		}
		mediaURL = url
	}

	username := common.AnonymousUser
	if p, err := c.profiles.Load(ctx); err == nil && p != nil && p.Username != "" {
		username = p.Username
	}

	date, tm := models.Stamp(c.now())
	report := models.Report{
		Type:        form.Type,
		Location:    form.Location,
		Description: form.Description,
		Username:    username,
		Date:        date,
		Time:        tm,
		Image:       mediaURL,
	}

	var (
		result *models.Report
		err    error
	)
	if editID == "" {
		result, err = c.store.Create(ctx, report)
	} else {
		result, err = c.store.Update(ctx, editID, report)
	}
	if err != nil {
		return nil, err
	}

	c.onSubmitSuccess(ctx, editID != "")
	return result, nil
}

// Delete removes a report and reconciles the snapshot.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	if err := c.store.Refresh(ctx); err != nil {
		c.log.Warn(ctx, "refresh after delete failed", "error", err)
	}
	return nil
}

// CanMutate reports whether the session user authored the report.
// Client-side convenience only; the backend re-verifies authorship.
func (c *Controller) CanMutate(r models.Report, username string) bool {
	return username != "" && r.Username == username
}

func (c *Controller) onSubmitSuccess(ctx context.Context, isUpdate bool) {
	c.flag.Set(true)

	if err := c.store.Refresh(ctx); err != nil {
		c.log.Warn(ctx, "refresh after submit failed", "error", err)
	}

	body := "Your disaster report has been published!"
	if isUpdate {
		body = "Your disaster report has been updated!"
	}
	c.notifier.Notify(ctx, "BRAM", body)
}

// isLocalMedia reports whether the media reference still needs an
// upload. Anything that is not already an http(s) URL is treated as a
// local file path.
func isLocalMedia(media string) bool {
	if media == "" {
		return false
	}
	return !strings.HasPrefix(media, "http://") && !strings.HasPrefix(media, "https://")
}
