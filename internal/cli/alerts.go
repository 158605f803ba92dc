package cli

import (
	"context"
	"fmt"

	"github.com/bramapp/bram/internal/models"
)

// Alerts prints the category overview. A "(new)" marker appears next to
// categories with reports the user has not acknowledged yet; the state
// is derived fresh on every call, never cached.
func (a *App) Alerts(ctx context.Context) error {
	fmt.Fprintln(a.out, "Alerts")
	for _, t := range models.ReportTypes {
		count := len(a.controller.Store().ByCategory(t))
		marker := ""
		if a.controller.Unread(t) {
			marker = " (new)"
		}
		fmt.Fprintf(a.out, "  %-10s %d report(s)%s\n", t, count, marker)
	}
	fmt.Fprintln(a.out, "Use 'open <type>' to view a category.")
	return nil
}

// OpenCategory lists one category's reports and acknowledges them, so
// its unread marker goes out until new reports arrive.
func (a *App) OpenCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: open <type>")
		return nil
	}

	t, ok := models.ParseReportType(args[0])
	if !ok {
		fmt.Fprintln(a.out, "Unknown disaster type:", args[0])
		return nil
	}

	reports := a.controller.OnCategoryOpened(t)
	fmt.Fprintf(a.out, "%s Reports\n", t)
	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No reports yet.")
		return nil
	}
	for _, r := range reports {
		a.printReport(r)
	}
	return nil
}

// Badge shows the shared new-activity flag; "badge clear" resets it.
// Nothing clears the flag implicitly.
func (a *App) Badge(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "clear" {
		a.controller.Flag().Set(false)
		fmt.Fprintln(a.out, "Badge cleared")
		return nil
	}

	if a.controller.Flag().Get() {
		fmt.Fprintln(a.out, "New activity since the badge was last cleared.")
	} else {
		fmt.Fprintln(a.out, "No new activity.")
	}
	return nil
}
