// internal/model/message.go
package model

// Channel payloads. Field names are part of the wire contract between the
// dispatch gateway and the workers, so they stay camelCase.

type CampaignMessage struct {
	SegmentID    int    `json:"segmentId"`
	AudienceSize int    `json:"audienceSize"`
	Message      string `json:"message"`
}

type OrderMessage struct {
	// CustomerID 0 means the customer is unknown and must be created from
	// the name/email/mobile carried in the same message.
	CustomerID     int     `json:"customerId"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	MobileNumber   int64   `json:"mobileNumber"`
	PurchaseAmount float64 `json:"purchaseAmount"`
	PurchaseDate   string  `json:"purchaseDate"`
}
