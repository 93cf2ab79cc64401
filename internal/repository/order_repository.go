package repository

import (
	"database/sql"
	"time"

	"github.com/minicrm/mini-crm-be/internal/model"
)

type OrderRepositoryInterface interface {
	// RecordOrder ingests one order. A zero customerID means the customer
	// is unknown: a row is created from the supplied identity first. The
	// customer insert, the order insert and the aggregate bump all happen
	// inside one transaction, so a failure leaves nothing behind.
	RecordOrder(msg model.OrderMessage, purchaseDate time.Time) (*model.Order, error)
}

type OrderRepository struct {
	DB *sql.DB
}

func (r *OrderRepository) RecordOrder(msg model.OrderMessage, purchaseDate time.Time) (*model.Order, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	customerID := msg.CustomerID
	if customerID == 0 {
		insertCustomer := `
            INSERT INTO customers (name, email, mobile_number)
            VALUES ($1, $2, $3)
            RETURNING id
        `
		if err := tx.QueryRow(insertCustomer, msg.CustomerName, msg.CustomerEmail, msg.MobileNumber).Scan(&customerID); err != nil {
			return nil, err
		}
	}

	order := &model.Order{
		CustomerID:     customerID,
		PurchaseAmount: msg.PurchaseAmount,
		PurchaseDate:   purchaseDate,
	}
	insertOrder := `
        INSERT INTO orders (customer_id, purchase_amount, purchase_date)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	if err := tx.QueryRow(insertOrder, order.CustomerID, order.PurchaseAmount, order.PurchaseDate).Scan(&order.ID); err != nil {
		return nil, err
	}

	// Aggregates advance in place at the store so concurrent orders for
	// the same customer cannot lose updates.
	updateCustomer := `
        UPDATE customers
        SET total_spending = COALESCE(total_spending, 0) + $1,
            last_visit = $2,
            visit_count = COALESCE(visit_count, 0) + 1
        WHERE id = $3
    `
	if _, err := tx.Exec(updateCustomer, order.PurchaseAmount, order.PurchaseDate, order.CustomerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
