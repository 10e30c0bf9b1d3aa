package validate

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moeez1234567/Job-descriptor/internal/dtos"
	"github.com/moeez1234567/Job-descriptor/internal/models"
)

// FieldErrors maps a json field name to a human-readable message. All
// violations from one pass are reported together so the form layer can
// highlight every broken field at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

const deadlineLayout = "2006-01-02"

// enumRules covers the string fields expressible as validator tags.
// Skills, numbers and the deadline need normalization first and are
// checked by hand below.
type enumRules struct {
	JobTitle               string `json:"job_title" validate:"required"`
	CompanyName            string `json:"company_name" validate:"required"`
	Location               string `json:"location" validate:"required"`
	Workplace              string `json:"workplace" validate:"required,oneof=Remote On-site Hybrid"`
	ExpLevelCategory       string `json:"exp_level_category" validate:"required,oneof='Entry Level' 'Mid Level' 'Senior Level' Expert"`
	StylePreference        string `json:"style_preference" validate:"required,oneof=LinkedIn Indeed Rozee.pk LLM-Generated"`
	OutputLengthPreference string `json:"output_length_preference" validate:"required,oneof=Concise Standard Detailed"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// Report errors under the json field name, not the Go field name.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// JobRequest checks every rule independently and either returns the
// validated, immutable request or the full set of field errors.
// It never touches the generation backend.
func JobRequest(req dtos.JobDetailsRequest) (*models.JobRequest, FieldErrors) {
	return jobRequestAt(req, time.Now())
}

func jobRequestAt(req dtos.JobDetailsRequest, now time.Time) (*models.JobRequest, FieldErrors) {
	errs := FieldErrors{}

	rules := enumRules{
		JobTitle:               strings.TrimSpace(req.JobTitle),
		CompanyName:            strings.TrimSpace(req.CompanyName),
		Location:               strings.TrimSpace(req.Location),
		Workplace:              strings.TrimSpace(req.Workplace),
		ExpLevelCategory:       strings.TrimSpace(req.ExpLevelCategory),
		StylePreference:        strings.TrimSpace(req.StylePreference),
		OutputLengthPreference: strings.TrimSpace(req.OutputLengthPreference),
	}
	if err := v.Struct(rules); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs[fe.Field()] = messageFor(fe)
		}
	}

	skills := NormalizeSkills(req.Skills)
	if len(skills) == 0 {
		errs["skills"] = "at least one skill is required"
	}

	switch {
	case !req.MinExperienceYears.Set:
		errs["min_experience_years"] = "minimum experience is required"
	case !req.MinExperienceYears.Valid:
		errs["min_experience_years"] = "must be a number"
	case req.MinExperienceYears.Value < 0:
		errs["min_experience_years"] = "must not be negative"
	}

	if req.MinSalary != nil && *req.MinSalary < 0 {
		errs["min_salary"] = "must not be negative"
	}
	if req.MaxSalary != nil && *req.MaxSalary < 0 {
		errs["max_salary"] = "must not be negative"
	}
	if req.MinSalary != nil && req.MaxSalary != nil && *req.MaxSalary < *req.MinSalary {
		errs["max_salary"] = "must be greater than or equal to min_salary"
	}

	deadline := now.AddDate(0, 0, 30)
	if raw := strings.TrimSpace(req.Deadline); raw != "" {
		parsed, err := time.Parse(deadlineLayout, raw)
		if err != nil {
			errs["deadline"] = "must be a valid date in YYYY-MM-DD format"
		} else {
			deadline = parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.JobRequest{
		JobTitle:               rules.JobTitle,
		CompanyName:            rules.CompanyName,
		Location:               rules.Location,
		Workplace:              models.Workplace(rules.Workplace),
		Skills:                 skills,
		MinExperienceYears:     req.MinExperienceYears.Value,
		ExpLevelCategory:       models.ExperienceLevel(rules.ExpLevelCategory),
		MinSalary:              req.MinSalary,
		MaxSalary:              req.MaxSalary,
		Deadline:               deadline,
		Notes:                  strings.TrimSpace(req.Notes),
		QualificationDetails:   strings.TrimSpace(req.QualificationDetails),
		BenefitsDetails:        strings.TrimSpace(req.BenefitsDetails),
		StylePreference:        models.StylePreference(rules.StylePreference),
		OutputLengthPreference: models.LengthPreference(rules.OutputLengthPreference),
	}, nil
}

// NormalizeSkills splits every entry on commas, trims whitespace, drops
// empties and de-duplicates case-insensitively while keeping the first
// casing and the original order.
func NormalizeSkills(raw []string) []string {
	seen := make(map[string]bool)
	var skills []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			skill := strings.TrimSpace(part)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, skill)
		}
	}
	return skills
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), "'", ""))
	default:
		return "invalid value"
	}
}
