package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/moeez1234567/Job-descriptor/internal/dtos"
	"github.com/moeez1234567/Job-descriptor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator is a deterministic backend substitute.
type stubGenerator struct {
	calls  int
	output string
	err    error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string, params llm.Params) (string, error) {
	g.calls++
	return g.output, g.err
}

func newTestService(gen llm.Generator) *DescriptionService {
	client := llm.NewClient(gen, 50*time.Millisecond, time.Millisecond)
	return NewDescriptionService(client, NewHistoryService(nil))
}

func validRequest() dtos.JobDetailsRequest {
	return dtos.JobDetailsRequest{
		JobTitle:               "Backend Engineer",
		CompanyName:            "Acme",
		Location:               "Karachi",
		Workplace:              "Remote",
		Skills:                 dtos.StringList{"Go", "Docker"},
		MinExperienceYears:     dtos.FlexibleNumber{Value: 3, Set: true, Valid: true},
		ExpLevelCategory:       "Mid Level",
		StylePreference:        "LinkedIn",
		OutputLengthPreference: "Standard",
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	gen := &stubGenerator{output: "We need a Backend Engineer skilled in Go and Docker."}
	svc := newTestService(gen)

	result, perr := svc.Generate(context.Background(), "req-1", validRequest())
	require.Nil(t, perr)
	require.NotNil(t, result)

	assert.Equal(t, 1, strings.Count(result.EmphasizedHTML, "<b>Go</b>"))
	assert.Equal(t, 1, strings.Count(result.EmphasizedHTML, "<b>Docker</b>"))
	assert.Contains(t, result.EmphasizedHTML, "<b>Backend Engineer</b>")
	assert.Equal(t, result.RawText, result.EmphasizedPlain, "plain rendering must be the raw text verbatim")
	assert.Equal(t, 1, gen.calls)
}

func TestGenerate_ValidationFailureSkipsBackend(t *testing.T) {
	gen := &stubGenerator{output: "should never be produced"}
	svc := newTestService(gen)

	req := validRequest()
	req.JobTitle = ""
	req.Skills = nil

	result, perr := svc.Generate(context.Background(), "req-2", req)
	require.Nil(t, result)
	require.NotNil(t, perr)

	assert.Equal(t, "validation", perr.Kind)
	assert.Len(t, perr.FieldErrors, 2)
	assert.Contains(t, perr.FieldErrors, "job_title")
	assert.Contains(t, perr.FieldErrors, "skills")
	assert.Equal(t, 0, gen.calls, "validation failures must never reach the backend")
}

func TestGenerate_TimeoutSurfacesAsResult(t *testing.T) {
	gen := &stubGenerator{err: context.DeadlineExceeded}
	svc := newTestService(gen)

	result, perr := svc.Generate(context.Background(), "req-3", validRequest())
	require.Nil(t, result)
	require.NotNil(t, perr)

	assert.Equal(t, "timeout", perr.Kind)
	assert.Equal(t, 2, gen.calls, "transient failures get exactly one retry")
	assert.NotContains(t, perr.Message, "deadline", "internal error text must not leak")
}

func TestGenerate_EmptyResponse(t *testing.T) {
	gen := &stubGenerator{output: "   \n  "}
	svc := newTestService(gen)

	result, perr := svc.Generate(context.Background(), "req-4", validRequest())
	require.Nil(t, result)
	require.NotNil(t, perr)

	assert.Equal(t, "empty_response", perr.Kind)
	assert.Equal(t, 1, gen.calls, "empty responses are not retried")
}

func TestGenerate_EscapesBackendMarkup(t *testing.T) {
	gen := &stubGenerator{output: "Use <strong>Go</strong> & Docker"}
	svc := newTestService(gen)

	result, perr := svc.Generate(context.Background(), "req-5", validRequest())
	require.Nil(t, perr)

	assert.NotContains(t, result.EmphasizedHTML, "<strong>", "backend markup must be escaped, not trusted")
	assert.Contains(t, result.EmphasizedHTML, "&amp;")
	assert.Contains(t, result.EmphasizedHTML, "<b>Docker</b>")
}
