package owner_summary_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"haven/internal/dto"
	"haven/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP всегда отвечает 200: сводка деградирует до нулевой, а не ломает
// дашборд продавца.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	summary := h.service.OwnerSummary(r.Context(), userID)

	summaryDTO := dto.OwnerSummary{
		PendingOrders: summary.PendingOrders,
		TotalOrders:   summary.TotalOrders,
		RecentOrders:  dto.FromOrderList(summary.RecentOrders),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(summaryDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
