package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
)

// OrderHandler exposes the read side of the generated order book.
type OrderHandler struct {
	orderRepo *repository.OrderRepository
	logger    *zap.Logger
}

func NewOrderHandler(orderRepo *repository.OrderRepository, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo, logger: logger}
}

// List godoc
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status" Enums(unplanned, planned, in_progress, done, cancelled)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.Order}
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	status := domain.OrderStatus(r.URL.Query().Get("status"))

	orders, total, err := h.orderRepo.List(r.Context(), status, page, pageSize)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Data:       orders,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// ListUnassigned godoc
// @Summary List unassigned open orders
// @Description Returns the orders the next assignment pass will pick up, ordered by scheduled date.
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/unassigned [get]
func (h *OrderHandler) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.ListUnassigned(r.Context())
	if err != nil {
		h.logger.Error("failed to list unassigned orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list unassigned orders")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
