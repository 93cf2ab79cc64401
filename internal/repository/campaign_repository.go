package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/minicrm/mini-crm-be/internal/errors"
	"github.com/minicrm/mini-crm-be/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	ListAll() ([]model.CampaignWithSegment, error)

	// GetStats joins the campaign with the per-status counts of its
	// delivery log. A campaign with no processed deliveries yet reports
	// 0 sent / 0 failed.
	GetStats(campaignID int) (*model.CampaignStats, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO campaigns (segment_id, audience_size, created_at, updated_at)
        VALUES ($1, $2, $3, $3)
        RETURNING id
    `
	return r.DB.QueryRow(query, c.SegmentID, c.AudienceSize, c.CreatedAt).Scan(&c.ID)
}

// ListAll returns every campaign with its segment name, newest first.
// Segments can be deleted out from under old campaigns, hence the LEFT JOIN.
func (r *CampaignRepository) ListAll() ([]model.CampaignWithSegment, error) {
	query := `
        SELECT c.id, c.segment_id, c.audience_size, c.created_at, c.updated_at,
               COALESCE(s.segment_name, '')
        FROM campaigns c
        LEFT JOIN segments s ON s.id = c.segment_id
        ORDER BY c.created_at DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.CampaignWithSegment{}
	for rows.Next() {
		var c model.CampaignWithSegment
		if err := rows.Scan(&c.ID, &c.SegmentID, &c.AudienceSize, &c.CreatedAt, &c.UpdatedAt, &c.SegmentName); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) GetStats(campaignID int) (*model.CampaignStats, error) {
	query := `
        SELECT c.id, c.segment_id, COALESCE(s.segment_name, ''), c.audience_size, c.created_at,
               COUNT(*) FILTER (WHERE cl.status = 'SENT'),
               COUNT(*) FILTER (WHERE cl.status = 'FAILED')
        FROM campaigns c
        LEFT JOIN segments s ON s.id = c.segment_id
        LEFT JOIN communication_logs cl ON cl.campaign_id = c.id
        WHERE c.id = $1
        GROUP BY c.id, c.segment_id, s.segment_name, c.audience_size, c.created_at
    `
	var stats model.CampaignStats
	err := r.DB.QueryRow(query, campaignID).Scan(
		&stats.CampaignID, &stats.SegmentID, &stats.SegmentName,
		&stats.AudienceSize, &stats.CreatedAt,
		&stats.TotalSent, &stats.TotalFailed,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(campaignID)
		}
		return nil, err
	}
	return &stats, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
