// internal/model/segment.go
package model

import "time"

// Segment is a saved audience filter. Membership is recomputed on every
// resolution; nothing is materialized.
type Segment struct {
	ID            int        `db:"id" json:"id"`
	SegmentName   string     `db:"segment_name" json:"segmentName"`
	LowPar        float64    `db:"low_par" json:"lowPar"`
	HighPar       float64    `db:"high_par" json:"highPar"`
	LeastVisits   int        `db:"least_visits" json:"leastVisits"`
	MostVisits    int        `db:"most_visits" json:"mostVisits"`
	LastVisitDays int        `db:"last_visit_days" json:"lastVisitDays"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}
