// internal/model/communication_log.go
package model

import "time"

// Delivery statuses assigned by the simulated sender.
const (
	StatusSent   = "SENT"
	StatusFailed = "FAILED"
)

// CommunicationLog is one per-recipient delivery record. Rows are append
// only: the whole set for a campaign is written once, in one bulk insert.
type CommunicationLog struct {
	ID         int       `db:"id" json:"id"`
	CustomerID int       `db:"customer_id" json:"customer_id"`
	CampaignID int       `db:"campaign_id" json:"campaign_id"`
	Message    string    `db:"message" json:"message"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
