package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bramapp/bram/internal/common"
	"github.com/bramapp/bram/internal/models"
)

// Reports prints the full feed in backend order.
func (a *App) Reports(ctx context.Context) error {
	reports := a.controller.Store().All()
	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No disaster reports yet.")
		return nil
	}

	for _, r := range reports {
		a.printReport(r)
	}
	return nil
}

// SubmitReport collects a report form and publishes it.
func (a *App) SubmitReport(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login or register to post a report.")
		return nil
	}
	return a.submit(ctx, models.ReportForm{}, "")
}

// EditReport re-submits an existing report under its id. Only the
// author may edit; the check here is a UI convenience, the backend
// enforces the real boundary.
func (a *App) EditReport(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return nil
	}
	id := args[0]

	existing, ok := a.findReport(id)
	if !ok {
		fmt.Fprintln(a.out, "No such report:", id)
		return nil
	}
	if !a.controller.CanMutate(existing, a.username()) {
		fmt.Fprintln(a.out, "You can only edit your own reports.")
		return nil
	}

	form := models.ReportForm{
		Type:        existing.Type,
		Location:    existing.Location,
		Description: existing.Description,
		Media:       existing.Image,
	}
	return a.submit(ctx, form, id)
}

// DeleteReport removes one of the user's own reports.
func (a *App) DeleteReport(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}
	id := args[0]

	existing, ok := a.findReport(id)
	if !ok {
		fmt.Fprintln(a.out, "No such report:", id)
		return nil
	}
	if !a.controller.CanMutate(existing, a.username()) {
		fmt.Fprintln(a.out, "You can only delete your own reports.")
		return nil
	}

	confirm, err := GetSimpleText(a.reader, "Delete report "+id+"? (y/N)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.controller.Delete(ctx, id); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Report deleted successfully.")
	return nil
}

// submit collects form fields (prefilled values shown for edits) and
// hands the result to the controller.
func (a *App) submit(ctx context.Context, form models.ReportForm, editID string) error {
	typeNames := make([]string, len(models.ReportTypes))
	for i, t := range models.ReportTypes {
		typeNames[i] = string(t)
	}

	typePrompt := "Type (" + strings.Join(typeNames, ", ") + ")"
	if form.Type != "" {
		typePrompt += " [" + string(form.Type) + "]"
	}
	typeInput, err := GetSimpleText(a.reader, typePrompt, a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if typeInput != "" {
		t, ok := models.ParseReportType(typeInput)
		if !ok {
			fmt.Fprintln(a.out, "Unknown disaster type:", typeInput)
			return nil
		}
		form.Type = t
	}

	location, err := GetSimpleText(a.reader, prefilled("Location", form.Location), a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if location != "" {
		form.Location = location
	}

	description, err := GetMultiline(a.reader, prefilled("Describe the disaster", form.Description), a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if description != "" {
		form.Description = description
	}

	media, err := GetSimpleText(a.reader, prefilled("Photo/video file path or URL (optional)", form.Media), a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if media != "" {
		form.Media = media
	}

	if _, err := a.controller.Submit(ctx, form, editID); err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(a.out, "Please fill all required fields (Type, Location, Description).")
			return nil
		}
		log.Printf("Submission unsuccessful: %s", err.Error())
		return err
	}

	if editID == "" {
		fmt.Fprintln(a.out, "Disaster report published!")
	} else {
		fmt.Fprintln(a.out, "Disaster report updated successfully!")
	}
	return nil
}

func (a *App) findReport(id string) (models.Report, bool) {
	for _, r := range a.controller.Store().All() {
		if r.ID == id {
			return r, true
		}
	}
	return models.Report{}, false
}

func (a *App) printReport(r models.Report) {
	fmt.Fprintf(a.out, "[%s] %s\n", r.ID, r.Type)
	fmt.Fprintf(a.out, "  By: %s\n", r.Username)
	fmt.Fprintf(a.out, "  Location: %s\n", r.Location)
	fmt.Fprintf(a.out, "  %s\n", r.Description)
	if r.Date != "" || r.Time != "" {
		fmt.Fprintf(a.out, "  Date: %s Time: %s\n", r.Date, r.Time)
	}
	if r.Image != "" {
		fmt.Fprintf(a.out, "  Media: %s\n", r.Image)
	}
}

func prefilled(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}
