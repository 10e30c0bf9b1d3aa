package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moeez1234567/Job-descriptor/internal/dtos"
	"github.com/moeez1234567/Job-descriptor/internal/services"
)

// DescriptionHandler exposes the generation pipeline over HTTP.
// Dependency injection, same shape as the services it fronts.
type DescriptionHandler struct {
	Descriptions *services.DescriptionService
	History      *services.HistoryService
}

func NewDescriptionHandler(d *services.DescriptionService, h *services.HistoryService) *DescriptionHandler {
	return &DescriptionHandler{
		Descriptions: d,
		History:      h,
	}
}

// GenerateDescription is the POST /descriptions endpoint.
func (h *DescriptionHandler) GenerateDescription(c *gin.Context) {
	requestID := uuid.NewString()

	var req dtos.JobDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{
			Status:    "error",
			RequestID: requestID,
			Kind:      "bad_request",
			Message:   "Invalid JSON payload.",
		})
		return
	}

	log.Printf("📨 [%s] Generation request: %q at %q", requestID, req.JobTitle, req.CompanyName)

	result, perr := h.Descriptions.Generate(c.Request.Context(), requestID, req)
	if perr != nil {
		c.JSON(statusFor(perr.Kind), dtos.ErrorResponse{
			Status:    "error",
			RequestID: requestID,
			Kind:      perr.Kind,
			Message:   perr.Message,
			Errors:    perr.FieldErrors,
		})
		return
	}

	c.JSON(http.StatusOK, dtos.GenerationResponse{
		Status:         "success",
		RequestID:      requestID,
		JobDescription: result.EmphasizedHTML,
		RawDescription: result.EmphasizedPlain,
	})
}

// ListHistory is the GET /history endpoint over the audit trail.
func (h *DescriptionHandler) ListHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := h.History.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{
			Status:  "error",
			Kind:    "internal",
			Message: "Failed to load generation history.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"records": records,
	})
}

// HealthCheck reports service readiness along with the configured backend.
func HealthCheck(provider, model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"provider": provider,
			"model":    model,
		})
	}
}

func statusFor(kind string) int {
	switch kind {
	case "validation":
		return http.StatusBadRequest
	case "auth":
		return http.StatusBadGateway
	case "unavailable":
		return http.StatusServiceUnavailable
	case "timeout":
		return http.StatusGatewayTimeout
	case "empty_response":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
