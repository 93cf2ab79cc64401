package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	appErrors "github.com/minicrm/mini-crm-be/internal/errors"
	"github.com/minicrm/mini-crm-be/internal/model"
)

type CommunicationLogRepositoryInterface interface {
	// BulkInsert writes every log entry for a campaign in a single
	// statement. All rows land or none do.
	BulkInsert(logs []model.CommunicationLog) error

	GetByCampaignAndCustomer(campaignID, customerID int) (*model.CommunicationLog, error)
}

type CommunicationLogRepository struct {
	DB *sql.DB
}

func (r *CommunicationLogRepository) BulkInsert(logs []model.CommunicationLog) error {
	if len(logs) == 0 {
		return nil
	}

	now := time.Now()
	valueStrings := make([]string, 0, len(logs))
	args := make([]interface{}, 0, len(logs)*5)

	for i, entry := range logs {
		base := i * 5
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, entry.CustomerID, entry.CampaignID, entry.Message, entry.Status, now)
	}

	query := fmt.Sprintf(`
        INSERT INTO communication_logs (customer_id, campaign_id, message, status, created_at)
        VALUES %s
    `, strings.Join(valueStrings, ", "))

	_, err := r.DB.Exec(query, args...)
	return err
}

func (r *CommunicationLogRepository) GetByCampaignAndCustomer(campaignID, customerID int) (*model.CommunicationLog, error) {
	query := `
        SELECT id, customer_id, campaign_id, message, status, created_at
        FROM communication_logs
        WHERE campaign_id=$1 AND customer_id=$2
    `
	var entry model.CommunicationLog
	err := r.DB.QueryRow(query, campaignID, customerID).Scan(
		&entry.ID, &entry.CustomerID, &entry.CampaignID,
		&entry.Message, &entry.Status, &entry.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewReceiptNotFound(campaignID, customerID)
		}
		return nil, err
	}
	return &entry, nil
}

var _ CommunicationLogRepositoryInterface = (*CommunicationLogRepository)(nil)
