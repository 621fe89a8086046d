package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"haven/internal/dto"
	"haven/internal/entities"
	"haven/internal/service/order"
	"haven/internal/service/shop"
	"haven/pkg/logger"
)

const userIDHeader = "X-User-ID"

type Handler struct {
	log          handlerLogger
	orderService OrderService
	shopService  ShopService
}

func New(log handlerLogger, orderService OrderService, shopService ShopService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		orderService: orderService,
		shopService:  shopService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	// Менять статус может только владелец магазина, которому принадлежит заказ.
	shopEntity, err := h.shopService.GetShop(r.Context(), orderEntity.ShopID)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrShopNotFound), errors.Is(err, shop.ErrInvalidShopID):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	if shopEntity.OwnerID != userID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	customStatus := pointer.GetString(statusUpdateDTO.CustomStatus)
	updated, err := h.orderService.Transition(r.Context(), id, entities.OrderStatusType(statusUpdateDTO.Status), customStatus)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(*updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, order.ErrInvalidOrderID), errors.Is(err, order.ErrInvalidStatus):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, order.ErrVersionConflict):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, order.ErrStoreUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
