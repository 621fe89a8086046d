package delivery_time

import (
	"fmt"
	"time"

	"haven/internal/entities"
)

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

// CalculateDeliveryTime считает время доставки по истории статусов: от
// последней записи accepted до последней записи delivered. Часы и минуты
// округляются вниз. Если одной из записей нет - возвращает пустую строку,
// это не ошибка.
func (d *DeliveryTimeFactory) CalculateDeliveryTime(history []entities.StatusEntry) string {
	var acceptedAt, deliveredAt time.Time

	for _, entry := range history {
		switch entry.Status {
		case entities.OrderAccepted:
			acceptedAt = entry.Timestamp
		case entities.OrderDelivered:
			deliveredAt = entry.Timestamp
		}
	}

	if acceptedAt.IsZero() || deliveredAt.IsZero() {
		return ""
	}

	diff := deliveredAt.Sub(acceptedAt)
	if diff < 0 {
		return ""
	}

	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)

	return fmt.Sprintf("%dh %dm", hours, minutes)
}
