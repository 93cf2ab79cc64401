package repository

import (
	"database/sql"

	"github.com/minicrm/mini-crm-be/internal/model"
)

// CustomerRepositoryInterface defines methods used by services
type CustomerRepositoryInterface interface {
	GetByMobile(mobileNumber int64) (*model.Customer, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

// GetByMobile fetches a customer by mobile number, the external lookup key.
// Returns nil, nil when no customer carries that number.
func (r *CustomerRepository) GetByMobile(mobileNumber int64) (*model.Customer, error) {
	query := `
        SELECT id, name, email, mobile_number,
               COALESCE(total_spending, 0), COALESCE(visit_count, 0), last_visit
        FROM customers
        WHERE mobile_number = $1
    `
	row := r.DB.QueryRow(query, mobileNumber)

	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.MobileNumber, &c.TotalSpending, &c.VisitCount, &c.LastVisit); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
