package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/service"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
	generatorService    *service.GeneratorService
	logger              *zap.Logger
}

func NewSubscriptionHandler(
	subscriptionService *service.SubscriptionService,
	generatorService *service.GeneratorService,
	logger *zap.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		generatorService:    generatorService,
		logger:              logger,
	}
}

// List godoc
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 100)" default(20)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.Subscription}
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /subscriptions [get]
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}

	subs, total, err := h.subscriptionService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list subscriptions", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list subscriptions")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Data:       subs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// Create godoc
// @Summary Create a subscription
// @Description Registers a recurring contract. The next due date starts at the start date; the daily generation pass materializes the orders.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body domain.CreateSubscriptionRequest true "Subscription to create"
// @Success 201 {object} domain.Subscription
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	sub, err := h.subscriptionService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create subscription", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create subscription")
		return
	}

	respondJSON(w, http.StatusCreated, sub)
}

// GetByID godoc
// @Summary Get a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} domain.Subscription
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	sub, err := h.subscriptionService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respondWithError(w, http.StatusNotFound, "Subscription not found")
			return
		}
		h.logger.Error("failed to get subscription", zap.Error(err), zap.String("id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get subscription")
		return
	}

	respondJSON(w, http.StatusOK, sub)
}

// UpdateStatus godoc
// @Summary Update subscription status
// @Description Pauses, resumes or cancels a subscription. Only active subscriptions are picked up by the generation pass.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body domain.UpdateSubscriptionStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /subscriptions/{id}/status [put]
func (h *SubscriptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	var req domain.UpdateSubscriptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.subscriptionService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondWithError(w, http.StatusNotFound, "Subscription not found")
		case errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update subscription status", zap.Error(err), zap.String("id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to update subscription status")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Orders godoc
// @Summary List orders of a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {array} domain.Order
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /subscriptions/{id}/orders [get]
func (h *SubscriptionHandler) Orders(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	orders, err := h.subscriptionService.Orders(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			respondWithError(w, http.StatusNotFound, "Subscription not found")
			return
		}
		h.logger.Error("failed to list subscription orders", zap.Error(err), zap.String("id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to list subscription orders")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// Regenerate godoc
// @Summary Rebuild the order series of a subscription
// @Description Deletes the subscription's machine-managed orders and rebuilds the series from the start date. Manually edited orders are preserved.
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} domain.GenerationSummary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /subscriptions/{id}/regenerate [post]
func (h *SubscriptionHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	summary, err := h.generatorService.ForceRegenerate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubscriptionNotFound):
			respondWithError(w, http.StatusNotFound, "Subscription not found")
		case errors.Is(err, service.ErrInvalidSubscription):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("failed to regenerate subscription orders", zap.Error(err), zap.String("id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to regenerate subscription orders")
		}
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
