// Package models defines the report and profile types exchanged with the
// disaster-reporting backend.
package models

import (
	"strings"
	"time"
)

// ReportType classifies a disaster report.
type ReportType string

const (
	ReportTypeFlood      ReportType = "Flood"
	ReportTypeFire       ReportType = "Fire"
	ReportTypeLandslide  ReportType = "Landslide"
	ReportTypeEarthquake ReportType = "Earthquake"
)

// ReportTypes lists the categories in display order.
var ReportTypes = []ReportType{
	ReportTypeFlood,
	ReportTypeFire,
	ReportTypeLandslide,
	ReportTypeEarthquake,
}

// Valid reports whether t is one of the known categories. Records with
// unrecognized types are excluded from every per-category view.
func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeFlood, ReportTypeFire, ReportTypeLandslide, ReportTypeEarthquake:
		return true
	}
	return false
}

// ParseReportType matches a user-supplied category name, ignoring case.
func ParseReportType(s string) (ReportType, bool) {
	for _, t := range ReportTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// Report is one user-submitted disaster event record. The id is assigned
// by the backend; the client never invents one. The media URL travels
// under the "image" key on the wire.
type Report struct {
	ID          string     `json:"id"`
	Type        ReportType `json:"type"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Username    string     `json:"username"`
	Date        string     `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
	Image       string     `json:"image,omitempty"`
}

// ReportForm carries user input for a new or edited report. Media may be
// a local file path (uploaded before submission) or an http(s) URL
// (passed through as-is).
type ReportForm struct {
	Type        ReportType
	Location    string
	Description string
	Media       string
}

// MissingFields returns the names of required fields that are empty.
func (f ReportForm) MissingFields() []string {
	var missing []string
	if f.Type == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(f.Location) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(f.Description) == "" {
		missing = append(missing, "description")
	}
	return missing
}

// Stamp formats submission date and time display strings.
func Stamp(now time.Time) (date string, tm string) {
	return now.Format("1/2/2006"), now.Format("15:04")
}
