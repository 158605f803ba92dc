package cli

import (
	"context"
	"fmt"

	"github.com/bramapp/bram/internal/models"
)

// safetyTips holds the static per-category safety advice shown by the
// tips command.
var safetyTips = map[models.ReportType][]string{
	models.ReportTypeFire: {
		"Stay calm and evacuate immediately if instructed.",
		"Use stairs, not elevators.",
		"If trapped, seal doors and signal for help.",
		"Stop, drop, and roll if your clothes catch fire.",
	},
	models.ReportTypeLandslide: {
		"Move away from the path of a landslide as quickly as possible.",
		"Listen for unusual sounds that might indicate moving debris.",
		"Stay alert during heavy rainfall.",
		"Avoid river valleys and low-lying areas.",
	},
	models.ReportTypeEarthquake: {
		"Drop, cover, and hold on.",
		"Stay away from windows and heavy objects.",
		"If outdoors, move to an open area away from buildings.",
		"After shaking stops, check for injuries and hazards.",
	},
	models.ReportTypeFlood: {
		"Move to higher ground immediately.",
		"Avoid walking or driving through flood waters.",
		"Listen to emergency broadcasts for updates.",
		"Disconnect electrical appliances if safe to do so.",
	},
}

// Tips prints the disaster safety tips for every category.
func (a *App) Tips(ctx context.Context) error {
	fmt.Fprintln(a.out, "Disaster Safety Tips")
	for _, t := range models.ReportTypes {
		fmt.Fprintf(a.out, "\n%s\n", t)
		for _, tip := range safetyTips[t] {
			fmt.Fprintf(a.out, "  - %s\n", tip)
		}
	}
	return nil
}
