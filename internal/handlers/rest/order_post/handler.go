package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"haven/internal/dto"
	"haven/internal/entities"
	"haven/internal/service/order"
	"haven/internal/service/shop"
	"haven/pkg/logger"
)

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, len(orderCreateDTO.Items))
	for i, item := range orderCreateDTO.Items {
		items[i] = entities.OrderItem{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			CartQuantity: item.CartQuantity,
		}
	}

	draft := entities.OrderDraft{
		ShopID:        orderCreateDTO.ShopID,
		CustomerID:    orderCreateDTO.CustomerID,
		CustomerEmail: orderCreateDTO.CustomerEmail,
		Items:         items,
		Total:         orderCreateDTO.Total,
		PaymentMethod: entities.PaymentMethodType(orderCreateDTO.PaymentMethod),
		DeliveryOpt:   entities.DeliveryOptionType(orderCreateDTO.DeliveryOption),
		DeliveryCity:  orderCreateDTO.DeliveryCity,
		DeliveryAddr:  orderCreateDTO.DeliveryAddress,
		CryptoWallet:  orderCreateDTO.CryptoWallet,
	}

	// Заказ на несуществующий магазин не создаем.
	if _, err := h.shopService.GetShop(r.Context(), draft.ShopID); err != nil {
		switch {
		case errors.Is(err, shop.ErrShopNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shop.ErrInvalidShopID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	created, err := h.orderService.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidItems),
			errors.Is(err, order.ErrInvalidTotal),
			errors.Is(err, order.ErrInvalidPayment),
			errors.Is(err, order.ErrInvalidDelivery):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrStoreUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
