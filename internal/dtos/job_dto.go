package dtos

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Front-end forms historically sent both shapes.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = strings.Split(single, ",")
	return nil
}

// FlexibleNumber accepts a JSON number or a numeric string ("3", "3.5").
// Valid reports whether the payload carried something parseable at all;
// range rules are the validator's job.
type FlexibleNumber struct {
	Value float64
	Set   bool
	Valid bool
}

func (f *FlexibleNumber) UnmarshalJSON(data []byte) error {
	f.Set = true
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = num
		f.Valid = true
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Keep the field marked as sent-but-invalid instead of failing the
		// whole bind; the validator reports it alongside its siblings.
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return nil
	}
	f.Value = parsed
	f.Valid = true
	return nil
}

// JobDetailsRequest is the inbound payload for description generation.
// Field-level rules live in internal/validate; binding here only parses.
type JobDetailsRequest struct {
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Workplace   string `json:"workplace"`

	Skills StringList `json:"skills"`

	MinExperienceYears FlexibleNumber `json:"min_experience_years"`
	ExpLevelCategory   string         `json:"exp_level_category"`

	MinSalary *float64 `json:"min_salary"`
	MaxSalary *float64 `json:"max_salary"`

	Deadline string `json:"deadline"`

	Notes                string `json:"notes"`
	QualificationDetails string `json:"qualification_details"`
	BenefitsDetails      string `json:"benefits_details"`

	StylePreference        string `json:"style_preference"`
	OutputLengthPreference string `json:"output_length_preference"`
}

// GenerationResponse is the success envelope returned to the form layer.
type GenerationResponse struct {
	Status         string `json:"status"`
	RequestID      string `json:"request_id"`
	JobDescription string `json:"job_description"`
	RawDescription string `json:"raw_description"`
}

// ErrorResponse is the uniform failure envelope. Errors is only populated
// for validation failures so the UI can highlight individual fields.
type ErrorResponse struct {
	Status    string            `json:"status"`
	RequestID string            `json:"request_id,omitempty"`
	Kind      string            `json:"kind,omitempty"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}
