// internal/model/order.go
package model

import "time"

type Order struct {
	ID             int       `db:"id" json:"id"`
	CustomerID     int       `db:"customer_id" json:"customer_id"`
	PurchaseAmount float64   `db:"purchase_amount" json:"purchase_amount"`
	PurchaseDate   time.Time `db:"purchase_date" json:"purchase_date"`
}
