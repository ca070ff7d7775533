// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared record and configuration structures for
// funnel-normalize.
package types

// DefaultStatus is stamped into Application.Status when no status column
// carries a value.
const DefaultStatus = "Applied"

// DefaultSource is the source label used when none is configured.
const DefaultSource = "Simplify"

// Canonical field names, in output column order.
const (
	FieldCompany     = "company"
	FieldRole        = "role"
	FieldLocation    = "location"
	FieldAppliedDate = "applied_date"
	FieldStatus      = "status"
	FieldJobURL      = "job_url"
	FieldSource      = "source"
)

// Columns is the fixed header of the normalized CSV.
var Columns = []string{
	FieldCompany,
	FieldRole,
	FieldLocation,
	FieldAppliedDate,
	FieldStatus,
	FieldJobURL,
	FieldSource,
}

// Application is one normalized job application. Every field is a plain
// string; missing values are empty strings.
type Application struct {
	// Company is the hiring company name.
	Company string `json:"company" yaml:"company"`

	// Role is the job title applied for.
	Role string `json:"role" yaml:"role"`

	// Location is the job location as exported.
	Location string `json:"location" yaml:"location"`

	// AppliedDate is YYYY-MM-DD when the export value could be parsed,
	// otherwise the exported value unchanged.
	AppliedDate string `json:"applied_date" yaml:"applied_date"`

	// Status is the application status (DefaultStatus when absent).
	Status string `json:"status" yaml:"status"`

	// JobURL is the posting link.
	JobURL string `json:"job_url" yaml:"job_url"`

	// Source is the run-wide label naming the export's origin.
	Source string `json:"source" yaml:"source"`
}

// Values returns the record's fields in Columns order.
func (a Application) Values() []string {
	return []string{
		a.Company,
		a.Role,
		a.Location,
		a.AppliedDate,
		a.Status,
		a.JobURL,
		a.Source,
	}
}
