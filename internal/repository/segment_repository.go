package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/minicrm/mini-crm-be/internal/errors"
	"github.com/minicrm/mini-crm-be/internal/model"
)

type SegmentRepositoryInterface interface {
	Create(s *model.Segment) error
	GetByID(id int) (*model.Segment, error)
	ListAll() ([]model.Segment, error)
	Update(s *model.Segment) error
	Delete(id int) error

	// ResolveAudience runs the segment's filter against the live customer
	// aggregates and returns the matching id/name set.
	ResolveAudience(s *model.Segment) ([]model.AudienceMember, error)
}

type SegmentRepository struct {
	DB *sql.DB
}

func (r *SegmentRepository) Create(s *model.Segment) error {
	s.CreatedAt = time.Now()
	query := `
        INSERT INTO segments (segment_name, low_par, high_par, least_visits, most_visits, last_visit_days, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	return r.DB.QueryRow(query, s.SegmentName, s.LowPar, s.HighPar, s.LeastVisits, s.MostVisits, s.LastVisitDays, s.CreatedAt).Scan(&s.ID)
}

func (r *SegmentRepository) GetByID(id int) (*model.Segment, error) {
	query := `
        SELECT id, segment_name, low_par, high_par, least_visits, most_visits, last_visit_days, created_at, updated_at
        FROM segments WHERE id=$1
    `
	var s model.Segment
	err := r.DB.QueryRow(query, id).Scan(&s.ID, &s.SegmentName, &s.LowPar, &s.HighPar, &s.LeastVisits, &s.MostVisits, &s.LastVisitDays, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewSegmentNotFound(id)
		}
		return nil, err
	}
	return &s, nil
}

func (r *SegmentRepository) ListAll() ([]model.Segment, error) {
	query := `
        SELECT id, segment_name, low_par, high_par, least_visits, most_visits, last_visit_days, created_at, updated_at
        FROM segments
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	segments := []model.Segment{}
	for rows.Next() {
		var s model.Segment
		if err := rows.Scan(&s.ID, &s.SegmentName, &s.LowPar, &s.HighPar, &s.LeastVisits, &s.MostVisits, &s.LastVisitDays, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return segments, rows.Err()
}

func (r *SegmentRepository) Update(s *model.Segment) error {
	query := `
        UPDATE segments
        SET segment_name=$1, low_par=$2, high_par=$3, least_visits=$4, most_visits=$5, last_visit_days=$6, updated_at=NOW()
        WHERE id=$7
    `
	_, err := r.DB.Exec(query, s.SegmentName, s.LowPar, s.HighPar, s.LeastVisits, s.MostVisits, s.LastVisitDays, s.ID)
	return err
}

func (r *SegmentRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM segments WHERE id=$1`, id)
	return err
}

// ResolveAudience translates the segment's bands straight into a predicate
// over the customer aggregates. Spend and visit bands are half-open
// (> low, <= high); recency is days since last visit. An inverted band
// simply matches nothing, there is no validation here.
func (r *SegmentRepository) ResolveAudience(s *model.Segment) ([]model.AudienceMember, error) {
	query := `
        SELECT id, name FROM customers
        WHERE COALESCE(total_spending, 0) > $1 AND COALESCE(total_spending, 0) <= $2
          AND COALESCE(visit_count, 0) > $3 AND COALESCE(visit_count, 0) <= $4
          AND last_visit >= NOW() - ($5 * INTERVAL '1 day')
    `
	rows, err := r.DB.Query(query, s.LowPar, s.HighPar, s.LeastVisits, s.MostVisits, s.LastVisitDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.AudienceMember{}
	for rows.Next() {
		var m model.AudienceMember
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

var _ SegmentRepositoryInterface = (*SegmentRepository)(nil)
