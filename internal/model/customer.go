// internal/model/customer.go
package model

import "time"

type Customer struct {
	ID            int        `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Email         string     `db:"email" json:"email"`
	MobileNumber  int64      `db:"mobile_number" json:"mobile_number"`
	TotalSpending float64    `db:"total_spending" json:"total_spending"`
	VisitCount    int        `db:"visit_count" json:"visit_count"`
	LastVisit     *time.Time `db:"last_visit" json:"last_visit,omitempty"`
}

// AudienceMember is the slice of a customer that segment resolution exposes.
type AudienceMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
