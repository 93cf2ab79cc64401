// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrSegmentNotFound is a sentinel error
type ErrSegmentNotFound struct {
	SegmentID int
}

func (e *ErrSegmentNotFound) Error() string {
	return fmt.Sprintf("segment with ID %d not found", e.SegmentID)
}

func NewSegmentNotFound(id int) error {
	return &ErrSegmentNotFound{SegmentID: id}
}

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

func NewCampaignNotFound(id int) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrCustomerNotFound means no customer carries the given mobile number.
type ErrCustomerNotFound struct {
	MobileNumber int64
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with mobile number %d not found", e.MobileNumber)
}

func NewCustomerNotFound(mobile int64) error {
	return &ErrCustomerNotFound{MobileNumber: mobile}
}

// ErrReceiptNotFound means the customer exists but no delivery log entry
// does for that campaign, e.g. the worker has not processed it yet.
type ErrReceiptNotFound struct {
	CampaignID int
	CustomerID int
}

func (e *ErrReceiptNotFound) Error() string {
	return fmt.Sprintf("delivery receipt for campaign %d and customer %d not found", e.CampaignID, e.CustomerID)
}

func NewReceiptNotFound(campaignID, customerID int) error {
	return &ErrReceiptNotFound{CampaignID: campaignID, CustomerID: customerID}
}

// IsNotFound reports whether err is any of the not-found kinds above.
func IsNotFound(err error) bool {
	var seg *ErrSegmentNotFound
	var cam *ErrCampaignNotFound
	var cus *ErrCustomerNotFound
	var rec *ErrReceiptNotFound
	return errors.As(err, &seg) || errors.As(err, &cam) || errors.As(err, &cus) || errors.As(err, &rec)
}
