// internal/controller/segment_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/minicrm/mini-crm-be/internal/errors"
	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
	"github.com/minicrm/mini-crm-be/internal/service"
)

type SegmentController struct {
	SegmentRepo repository.SegmentRepositoryInterface
	Resolver    *service.SegmentResolver
}

type segmentBody struct {
	SegmentName   *string  `json:"segmentName"`
	LowPar        *float64 `json:"lowPar"`
	HighPar       *float64 `json:"highPar"`
	LeastVisits   *int     `json:"leastVisits"`
	MostVisits    *int     `json:"mostVisits"`
	LastVisitDays *int     `json:"lastVisitDays"`
}

func (b *segmentBody) complete() bool {
	return b.SegmentName != nil && *b.SegmentName != "" &&
		b.LowPar != nil && b.HighPar != nil &&
		b.LeastVisits != nil && b.MostVisits != nil && b.LastVisitDays != nil
}

func (b *segmentBody) toModel() *model.Segment {
	return &model.Segment{
		SegmentName:   *b.SegmentName,
		LowPar:        *b.LowPar,
		HighPar:       *b.HighPar,
		LeastVisits:   *b.LeastVisits,
		MostVisits:    *b.MostVisits,
		LastVisitDays: *b.LastVisitDays,
	}
}

// CreateSegment checks presence only. Nothing stops lowPar > highPar: an
// inverted band is stored as-is and resolves to an empty audience.
func (c *SegmentController) CreateSegment(w http.ResponseWriter, r *http.Request) {
	var body segmentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if !body.complete() {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Complete segment data is required"})
		return
	}

	segment := body.toModel()
	if err := c.SegmentRepo.Create(segment); err != nil {
		log.Println("⚠️ failed to create segment:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Segment created",
		"segmentId": segment.ID,
	})
}

func (c *SegmentController) GetSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := c.SegmentRepo.ListAll()
	if err != nil {
		log.Println("⚠️ failed to fetch segments:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, segments)
}

func (c *SegmentController) GetSegment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid segment id", http.StatusBadRequest)
		return
	}

	segment, err := c.SegmentRepo.GetByID(id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Segment not found"})
			return
		}
		log.Println("⚠️ failed to fetch segment:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, segment)
}

func (c *SegmentController) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid segment id", http.StatusBadRequest)
		return
	}

	var body segmentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if !body.complete() {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "All fields are required"})
		return
	}

	segment := body.toModel()
	segment.ID = id
	if err := c.SegmentRepo.Update(segment); err != nil {
		log.Println("⚠️ failed to update segment:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Segment updated successfully"})
}

func (c *SegmentController) DeleteSegment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid segment id", http.StatusBadRequest)
		return
	}

	if err := c.SegmentRepo.Delete(id); err != nil {
		log.Println("⚠️ failed to delete segment:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Segment deleted successfully"})
}

func (c *SegmentController) GetAudienceSize(w http.ResponseWriter, r *http.Request) {
	segmentID, err := strconv.Atoi(chi.URLParam(r, "segmentId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid segment ID"})
		return
	}

	size, err := c.Resolver.AudienceSize(segmentID)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
			return
		}
		log.Println("⚠️ failed to calculate audience size:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"audienceSize": size})
}
