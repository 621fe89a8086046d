package order_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"haven/internal/dto"
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

	orderEntity, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	// Удалять заказ может только владелец магазина.
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

	err = h.orderService.DeleteOrder(r.Context(), id)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.Message{Message: "Order deleted successfully"})
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
	case errors.Is(err, order.ErrInvalidOrderID):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, order.ErrStoreUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
