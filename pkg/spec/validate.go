package spec

import (
	"fmt"
	"math"
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Result is a single validation finding.
type Result struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
}

func (r *Report) addError(field, format string, args ...any) {
	r.Errors = append(r.Errors, Result{
		Severity: SeverityError,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
	r.Valid = false
}

func (r *Report) addWarning(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Result{
		Severity: SeverityWarning,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Validate checks the spec for values the generator cannot work with.
func (s *TownSpec) Validate() *Report {
	report := &Report{Valid: true}

	if s.Radius <= 0 {
		report.addError("radius", "radius must be positive, got %v", s.Radius)
	}
	if s.Wards < 1 {
		report.addError("wards", "at least one ward is required, got %d", s.Wards)
	}
	if s.HouseRatio <= 0 || s.HouseRatio >= 1 {
		report.addError("house_ratio", "house_ratio must be strictly between 0 and 1, got %v", s.HouseRatio)
	}
	if s.ParcelArea <= 0 {
		report.addError("parcel_area", "parcel_area must be positive, got %v", s.ParcelArea)
	}

	if s.Radius > 0 && s.ParcelArea > 0 {
		townArea := math.Pi * s.Radius * s.Radius
		if s.ParcelArea > townArea/4 {
			report.addWarning("parcel_area",
				"parcel_area %v leaves fewer than four parcels in a radius-%v town", s.ParcelArea, s.Radius)
		}
	}
	if s.Wards > 64 {
		report.addWarning("wards", "%d wards is a lot for one town; generation may be slow", s.Wards)
	}

	return report
}
