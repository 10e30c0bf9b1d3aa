package prompt

import (
	"testing"
	"time"

	"github.com/moeez1234567/Job-descriptor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() *models.JobRequest {
	minSalary := 120000.0
	maxSalary := 150000.0
	return &models.JobRequest{
		JobTitle:               "Backend Engineer",
		CompanyName:            "Acme",
		Location:               "Karachi",
		Workplace:              models.WorkplaceRemote,
		Skills:                 []string{"Go", "Docker"},
		MinExperienceYears:     3,
		ExpLevelCategory:       models.ExpMid,
		MinSalary:              &minSalary,
		MaxSalary:              &maxSalary,
		Deadline:               time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Notes:                  "Fast-paced team",
		StylePreference:        models.StyleLinkedIn,
		OutputLengthPreference: models.LengthStandard,
	}
}

func TestCompose_Deterministic(t *testing.T) {
	req := sampleRequest()
	first, err := Compose(req)
	require.NoError(t, err)
	second, err := Compose(req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same request must yield a byte-identical prompt")
}

func TestCompose_EmbedsEveryContentField(t *testing.T) {
	out, err := Compose(sampleRequest())
	require.NoError(t, err)

	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Karachi")
	assert.Contains(t, out, "Remote")
	assert.Contains(t, out, "Go, Docker")
	assert.Contains(t, out, "minimum 3 years (Mid Level)")
	assert.Contains(t, out, "PKR 120,000 - PKR 150,000 per month")
	assert.Contains(t, out, "2026-10-01")
	assert.Contains(t, out, "Fast-paced team")
}

func TestCompose_SalaryOmittedWhenUnspecified(t *testing.T) {
	req := sampleRequest()
	req.MinSalary = nil
	req.MaxSalary = nil

	out, err := Compose(req)
	require.NoError(t, err)
	assert.NotContains(t, out, "Salary Range")
	assert.NotContains(t, out, "PKR")
}

func TestCompose_SingleSalaryBound(t *testing.T) {
	req := sampleRequest()
	req.MinSalary = nil

	out, err := Compose(req)
	require.NoError(t, err)
	assert.Contains(t, out, "up to PKR 150,000 per month")
}

func TestCompose_StyleDirectives(t *testing.T) {
	tests := []struct {
		style models.StylePreference
		want  string
	}{
		{models.StyleLinkedIn, "LinkedIn convention"},
		{models.StyleIndeed, "Indeed convention"},
		{models.StyleRozee, "Rozee.pk convention"},
		{models.StyleLLM, "detailed and expressive"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			req := sampleRequest()
			req.StylePreference = tt.style
			out, err := Compose(req)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompose_LengthDirectives(t *testing.T) {
	tests := []struct {
		length models.LengthPreference
		want   string
	}{
		{models.LengthConcise, "10-15 lines"},
		{models.LengthStandard, "15-25 lines"},
		{models.LengthDetailed, "comprehensive"},
	}
	for _, tt := range tests {
		t.Run(string(tt.length), func(t *testing.T) {
			req := sampleRequest()
			req.OutputLengthPreference = tt.length
			out, err := Compose(req)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
