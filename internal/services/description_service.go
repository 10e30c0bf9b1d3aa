package services

import (
	"context"
	"log"
	"time"

	"github.com/moeez1234567/Job-descriptor/internal/dtos"
	"github.com/moeez1234567/Job-descriptor/internal/emphasis"
	"github.com/moeez1234567/Job-descriptor/internal/llm"
	"github.com/moeez1234567/Job-descriptor/internal/models"
	"github.com/moeez1234567/Job-descriptor/internal/prompt"
	"github.com/moeez1234567/Job-descriptor/internal/validate"
)

// PipelineError is the uniform failure shape every stage collapses into.
// Message is user-facing; internal error detail is logged here and never
// carried further.
type PipelineError struct {
	Kind        string
	Message     string
	FieldErrors validate.FieldErrors
}

// DescriptionService sequences the generation pipeline:
// validate -> compose -> generate -> emphasize. It holds no per-request
// state; one call handles exactly one request.
type DescriptionService struct {
	Client  *llm.Client
	History *HistoryService
}

func NewDescriptionService(client *llm.Client, history *HistoryService) *DescriptionService {
	return &DescriptionService{
		Client:  client,
		History: history,
	}
}

// Generate runs the full pipeline for one submission. Validation failures
// short-circuit before any network call.
func (s *DescriptionService) Generate(ctx context.Context, requestID string, req dtos.JobDetailsRequest) (*models.GenerationResult, *PipelineError) {
	start := time.Now()

	// 1. Validate the structured input. All field violations come back in
	// one pass; the backend is never contacted on failure.
	validated, fieldErrs := validate.JobRequest(req)
	if fieldErrs != nil {
		s.record(requestID, req.JobTitle, req.CompanyName, req.StylePreference, req.OutputLengthPreference,
			"error", "validation", start, 0, 0)
		return nil, &PipelineError{
			Kind:        "validation",
			Message:     "One or more fields are invalid.",
			FieldErrors: fieldErrs,
		}
	}

	// 2. Compose the prompt. Pure and deterministic.
	promptText, err := prompt.Compose(validated)
	if err != nil {
		log.Printf("❌ [%s] Prompt composition failed: %v", requestID, err)
		s.record(requestID, validated.JobTitle, validated.CompanyName, string(validated.StylePreference),
			string(validated.OutputLengthPreference), "error", "internal", start, 0, 0)
		return nil, &PipelineError{
			Kind:    "internal",
			Message: "An unexpected error occurred while generating the description.",
		}
	}

	// 3. Invoke the backend. The client owns timeout, retry and
	// classification; we only translate the kind into a user message.
	raw, err := s.Client.GenerateText(ctx, promptText, llm.ParamsFor(validated.OutputLengthPreference))
	if err != nil {
		kind := llm.Kind(err)
		log.Printf("❌ [%s] Generation failed (%s): %v", requestID, kind, err)
		s.record(requestID, validated.JobTitle, validated.CompanyName, string(validated.StylePreference),
			string(validated.OutputLengthPreference), "error", kind, start, len(promptText), 0)
		return nil, &PipelineError{
			Kind:    kind,
			Message: userMessageFor(kind),
		}
	}

	// 4. Emphasize key terms. The plain rendering stays byte-identical to
	// the backend output.
	emphasizer := emphasis.ForRequest(validated)
	result := &models.GenerationResult{
		RawText:         raw,
		EmphasizedHTML:  emphasizer.Render(raw),
		EmphasizedPlain: raw,
	}

	// 5. Best-effort audit. Never blocks or fails the response.
	s.record(requestID, validated.JobTitle, validated.CompanyName, string(validated.StylePreference),
		string(validated.OutputLengthPreference), "success", "", start, len(promptText), len(raw))

	return result, nil
}

func (s *DescriptionService) record(requestID, title, company, style, length, status, failureKind string, start time.Time, promptChars, outputChars int) {
	s.History.Record(&models.GenerationRecord{
		RequestID:   requestID,
		JobTitle:    title,
		CompanyName: company,
		Style:       style,
		Length:      length,
		Status:      status,
		FailureKind: failureKind,
		DurationMs:  time.Since(start).Milliseconds(),
		PromptChars: promptChars,
		OutputChars: outputChars,
	})
}

// userMessageFor keeps backend failures actionable without echoing any
// internal detail to the caller.
func userMessageFor(kind string) string {
	switch kind {
	case "auth":
		return "The generation backend rejected the configured credential. Please contact the administrator."
	case "unavailable":
		return "The generation backend is temporarily unavailable. Please try again later."
	case "timeout":
		return "The generation backend took too long to respond. Please try again later."
	case "empty_response":
		return "The generation backend returned no usable content. Please try again."
	default:
		return "An unexpected error occurred while generating the description."
	}
}
