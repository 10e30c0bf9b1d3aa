// Package prompt renders a validated job request into the single prompt
// string handed to the generation backend. Composition is pure: the same
// request always produces a byte-identical prompt.
package prompt

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/moeez1234567/Job-descriptor/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const deadlineLayout = "2006-01-02"

// Comma-grouped amounts ("PKR 150,000") read better in generated postings.
var amounts = message.NewPrinter(language.English)

const descriptionTemplate = `You are an expert Human Resources professional specialized in writing professional job descriptions.
Your task is to generate a complete job description based on the provided details. Adhere to the specified style and length preferences.

**Job Details:**
* Job Title: {{.JobTitle}}
* Company Name: {{.CompanyName}}
* Location: {{.Location}}
* Workplace Type: {{.Workplace}}
* Required Skills: {{.Skills}}
* Experience: {{.Experience}}
{{- if .Salary}}
* Salary Range: {{.Salary}}. Note: this salary is in Pakistani Rupees (PKR). State the range clearly using the PKR currency symbol.
{{- end}}
* Application Deadline: {{.Deadline}}
* Additional Notes: {{.Notes}}

**Specific Inputs for Description:**
* Qualification Details Provided: {{.Qualifications}}
* Benefits Details Provided: {{.Benefits}}

**Style Directive:**
{{.StyleDirective}}

**Length Directive:**
{{.LengthDirective}}

**Instructions:**
1. Incorporate every provided job detail where relevant, including skills, experience{{if .Salary}}, salary{{end}} and the application deadline.
2. Structure the description with clear sections such as Responsibilities, Requirements, Qualifications and Benefits.
3. Do not include any conversational text, introductions, explanations or greetings - output only the job description itself.

**Generated Output:**
`

var descriptionTmpl = template.Must(template.New("job_description").Parse(descriptionTemplate))

var styleDirectives = map[models.StylePreference]string{
	models.StyleIndeed:   "Write in the Indeed convention: clear, concise bullet points, a brief company overview, and a direct tone.",
	models.StyleRozee:    "Write in the Rozee.pk convention: similar to Indeed but tailored for the Pakistani market, with professional, clearly labelled sections.",
	models.StyleLinkedIn: "Write in the LinkedIn convention: narrative and engaging, focused on culture, impact and growth opportunities.",
	models.StyleLLM:      "Write a detailed and expressive description: creative and comprehensive, highlighting culture, impact, responsibilities, qualifications, skills, salary and benefits with engaging, well-structured language.",
}

var lengthDirectives = map[models.LengthPreference]string{
	models.LengthConcise:  "Be very brief and focus only on the absolute key responsibilities and requirements (10-15 lines at most).",
	models.LengthStandard: "Provide a typical level of detail covering the main aspects (around 15-25 lines).",
	models.LengthDetailed: "Be comprehensive and elaborate on all sections.",
}

type templateData struct {
	JobTitle        string
	CompanyName     string
	Location        string
	Workplace       string
	Skills          string
	Experience      string
	Salary          string
	Deadline        string
	Notes           string
	Qualifications  string
	Benefits        string
	StyleDirective  string
	LengthDirective string
}

// Compose renders the prompt for a validated request. The request is never
// mutated.
func Compose(req *models.JobRequest) (string, error) {
	data := templateData{
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		Location:        req.Location,
		Workplace:       string(req.Workplace),
		Skills:          strings.Join(req.Skills, ", "),
		Experience:      experiencePhrase(req),
		Salary:          salaryPhrase(req.MinSalary, req.MaxSalary),
		Deadline:        req.Deadline.Format(deadlineLayout),
		Notes:           orNone(req.Notes),
		Qualifications:  orNone(req.QualificationDetails),
		Benefits:        orNone(req.BenefitsDetails),
		StyleDirective:  styleDirectives[req.StylePreference],
		LengthDirective: lengthDirectives[req.OutputLengthPreference],
	}

	var buf strings.Builder
	if err := descriptionTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func experiencePhrase(req *models.JobRequest) string {
	years := strconv.FormatFloat(req.MinExperienceYears, 'f', -1, 64)
	return "minimum " + years + " years (" + string(req.ExpLevelCategory) + ")"
}

// salaryPhrase returns "" when neither bound is given; the template drops
// the salary line entirely in that case.
func salaryPhrase(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return "PKR " + amount(*min) + " - PKR " + amount(*max) + " per month"
	case min != nil:
		return "from PKR " + amount(*min) + " per month"
	case max != nil:
		return "up to PKR " + amount(*max) + " per month"
	default:
		return ""
	}
}

func amount(v float64) string {
	return amounts.Sprintf("%d", int64(v))
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
