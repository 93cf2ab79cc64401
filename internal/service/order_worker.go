// internal/service/order_worker.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
)

// OrderWorker consumes NEW_ORDER messages: upsert the customer identity and
// advance the rolling aggregates (spend, visits, last visit) in one
// transaction per message.
type OrderWorker struct {
	OrderRepo repository.OrderRepositoryInterface
}

func (w *OrderWorker) Handle(body []byte) error {
	var msg model.OrderMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("invalid order payload: %w", err)
	}

	purchaseDate, err := parsePurchaseDate(msg.PurchaseDate)
	if err != nil {
		return fmt.Errorf("invalid purchase date %q: %w", msg.PurchaseDate, err)
	}

	order, err := w.OrderRepo.RecordOrder(msg, purchaseDate)
	if err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}

	log.Printf("✅ order %d recorded for customer %d", order.ID, order.CustomerID)
	return nil
}

func parsePurchaseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
