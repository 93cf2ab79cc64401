// internal/model/campaign.go
package model

import "time"

// Campaign is immutable after creation. SegmentID is an informational
// pointer: the audience was frozen at dispatch time, so later edits to the
// segment do not touch the campaign. AudienceSize is whatever the sender
// computed before submitting and is never reconciled against the live set.
type Campaign struct {
	ID           int        `db:"id" json:"id"`
	SegmentID    int        `db:"segment_id" json:"segment_id"`
	AudienceSize int        `db:"audience_size" json:"audience_size"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CampaignWithSegment joins in the segment name for listings.
type CampaignWithSegment struct {
	Campaign
	SegmentName string `db:"segment_name" json:"segment_name"`
}

// CampaignStats is the aggregate view over a campaign's delivery log.
type CampaignStats struct {
	CampaignID   int       `json:"campaign_id"`
	SegmentID    int       `json:"segment_id"`
	SegmentName  string    `json:"segment_name"`
	AudienceSize int       `json:"audience_size"`
	CreatedAt    time.Time `json:"created_at"`
	TotalSent    int       `json:"total_sent"`
	TotalFailed  int       `json:"total_failed"`
}
