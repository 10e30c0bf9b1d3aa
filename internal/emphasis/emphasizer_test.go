package emphasis

import (
	"html"
	"strings"
	"testing"

	"github.com/moeez1234567/Job-descriptor/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRender_WrapsEveryOccurrence(t *testing.T) {
	e := New("Go")
	out := e.Render("Go is great. We write Go every day.")
	assert.Equal(t, 2, strings.Count(out, "<b>Go</b>"))
}

func TestRender_LongestMatchWins(t *testing.T) {
	e := New("Go", "Google Cloud")
	out := e.Render("Experience with Google Cloud required")

	assert.Contains(t, out, "<b>Google Cloud</b>")
	assert.NotContains(t, out, "<b>Go</b>", "a consumed span must not be re-matched by a shorter term")
	assert.Equal(t, 1, strings.Count(out, "<b>"))
}

func TestRender_NoMatchInsideWords(t *testing.T) {
	e := New("Go")
	out := e.Render("Google uses Go internally")

	assert.Contains(t, out, "Google uses")
	assert.NotContains(t, out, "<b>Go</b>ogle")
	assert.Equal(t, 1, strings.Count(out, "<b>Go</b>"))
}

func TestRender_CaseInsensitiveKeepsSourceCasing(t *testing.T) {
	e := New("docker")
	out := e.Render("Docker and DOCKER and docker")
	assert.Contains(t, out, "<b>Docker</b>")
	assert.Contains(t, out, "<b>DOCKER</b>")
	assert.Contains(t, out, "<b>docker</b>")
}

func TestRender_EscapesOutsideMatches(t *testing.T) {
	e := New("Go")
	out := e.Render("Use <script> & Go")
	assert.Equal(t, "Use &lt;script&gt; &amp; <b>Go</b>", out)
}

func TestRender_NoTermsIsJustEscapedText(t *testing.T) {
	e := New()
	raw := "Plain text with <tags> & ampersands"
	assert.Equal(t, html.EscapeString(raw), e.Render(raw))
}

func TestRender_StrippedMarkersEqualEscapedRaw(t *testing.T) {
	e := New("Go", "Docker")
	raw := "We need Go & Docker, ideally \"production\" Go."
	out := e.Render(raw)

	stripped := strings.NewReplacer("<b>", "", "</b>", "").Replace(out)
	assert.Equal(t, html.EscapeString(raw), stripped)
}

func TestRender_MultiWordPhraseBoundaries(t *testing.T) {
	e := New("Machine Learning")
	out := e.Render("Deep Machine Learning experience; MachineLearning does not count")

	assert.Equal(t, 1, strings.Count(out, "<b>Machine Learning</b>"))
	assert.NotContains(t, out, "<b>MachineLearning</b>")
}

func TestRender_TermAtStartAndEnd(t *testing.T) {
	e := New("Go")
	out := e.Render("Go shops hire Go")
	assert.Equal(t, 2, strings.Count(out, "<b>Go</b>"))
}

func TestNew_DedupesAndOrders(t *testing.T) {
	e := New("go", "Go", " ", "", "Google Cloud")
	// Longest first, one entry per case-insensitive term.
	assert.Equal(t, []string{"Google Cloud", "go"}, e.terms)
}

func TestForRequest_IncludesSkillsAndDomainKeywords(t *testing.T) {
	req := &models.JobRequest{
		JobTitle:           "Backend Engineer",
		CompanyName:        "Acme",
		Location:           "Karachi",
		Workplace:          models.WorkplaceRemote,
		Skills:             []string{"Go", "Docker"},
		MinExperienceYears: 3,
		ExpLevelCategory:   models.ExpMid,
	}
	e := ForRequest(req)
	out := e.Render("Backend Engineer at Acme: Go, Docker, 3 years, Mid Level. Responsibilities follow.")

	for _, want := range []string{
		"<b>Backend Engineer</b>",
		"<b>Acme</b>",
		"<b>Go</b>",
		"<b>Docker</b>",
		"<b>3 years</b>",
		"<b>Mid Level</b>",
		"<b>Responsibilities</b>",
	} {
		assert.Contains(t, out, want)
	}
}
