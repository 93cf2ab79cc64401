// internal/service/segment_resolver.go
package service

import (
	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
)

// AudienceResolver turns a segment id into the live recipient set.
type AudienceResolver interface {
	Resolve(segmentID int) ([]model.AudienceMember, error)
}

// SegmentResolver recomputes membership from the stored segment parameters
// on every call. No caching, no ordering guarantee: callers must treat the
// result as a set.
type SegmentResolver struct {
	SegmentRepo repository.SegmentRepositoryInterface
}

func (s *SegmentResolver) Resolve(segmentID int) ([]model.AudienceMember, error) {
	segment, err := s.SegmentRepo.GetByID(segmentID)
	if err != nil {
		return nil, err
	}
	return s.SegmentRepo.ResolveAudience(segment)
}

// AudienceSize is the cardinality of the resolved set, nothing more.
func (s *SegmentResolver) AudienceSize(segmentID int) (int, error) {
	members, err := s.Resolve(segmentID)
	if err != nil {
		return 0, err
	}
	return len(members), nil
}

var _ AudienceResolver = (*SegmentResolver)(nil)
