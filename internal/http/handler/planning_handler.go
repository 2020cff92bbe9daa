package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/service"
	"go.uber.org/zap"
)

// PlanningHandler exposes the manual trigger surface for the generation and
// assignment passes, plus the planning stats read side.
type PlanningHandler struct {
	generatorService  *service.GeneratorService
	assignmentService *service.AssignmentService
	planningService   *service.PlanningService
	logger            *zap.Logger
}

func NewPlanningHandler(
	generatorService *service.GeneratorService,
	assignmentService *service.AssignmentService,
	planningService *service.PlanningService,
	logger *zap.Logger,
) *PlanningHandler {
	return &PlanningHandler{
		generatorService:  generatorService,
		assignmentService: assignmentService,
		planningService:   planningService,
		logger:            logger,
	}
}

// Generate godoc
// @Summary Run an order generation pass
// @Description Materializes due and projected orders for every active subscription inside the lookahead window. The optional asOf overrides the reference date for backfills.
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body domain.RunGenerationRequest false "Optional reference date override"
// @Success 200 {object} domain.GenerationSummary
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /planning/generate [post]
func (h *PlanningHandler) Generate(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now().UTC()

	var req domain.RunGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AsOf != "" {
		if err := validate.Struct(&req); err != nil {
			respondValidationError(w, err)
			return
		}
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid asOf date")
			return
		}
		asOf = parsed
	}

	summary, err := h.generatorService.RunDailyGeneration(r.Context(), asOf)
	if err != nil {
		h.logger.Error("generation pass failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to run generation pass")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Assign godoc
// @Summary Run an assignment pass
// @Description Matches every unassigned open order with the best scoring active employee.
// @Tags Planning
// @Produce json
// @Success 200 {object} domain.AssignmentSummary
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /planning/assign [post]
func (h *PlanningHandler) Assign(w http.ResponseWriter, r *http.Request) {
	summary, err := h.assignmentService.RunAssignmentPass(r.Context())
	if err != nil {
		h.logger.Error("assignment pass failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to run assignment pass")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Stats godoc
// @Summary Get planning statistics
// @Description Returns order counts, the share of orders still needing planning attention, active employee head count and total order revenue.
// @Tags Planning
// @Produce json
// @Success 200 {object} domain.PlanningStats
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /planning/stats [get]
func (h *PlanningHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.planningService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to get planning stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get planning stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
