// internal/controller/campaign_controller.go
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

type CampaignController struct {
	Gateway      *service.DispatchGateway
	Reader       *service.StatsReader
	CampaignRepo repository.CampaignRepositoryInterface
}

// AddCampaign validates presence only, publishes the intent and returns
// immediately. Whether the worker ever processes it is not this handler's
// business.
func (c *CampaignController) AddCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SegmentID    *int    `json:"segmentId"`
		AudienceSize *int    `json:"audienceSize"`
		Message      *string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.SegmentID == nil || body.AudienceSize == nil || body.Message == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Segment ID, audience size, and message are required",
		})
		return
	}

	payload := model.CampaignMessage{
		SegmentID:    *body.SegmentID,
		AudienceSize: *body.AudienceSize,
		Message:      *body.Message,
	}
	if err := c.Gateway.SubmitCampaign(payload); err != nil {
		log.Println("⚠️ failed to publish campaign:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Error publishing campaign"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Campaign published",
		"campaign": payload,
	})
}

func (c *CampaignController) FetchAllCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.CampaignRepo.ListAll()
	if err != nil {
		log.Println("⚠️ failed to fetch campaigns:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Error fetching campaigns"})
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (c *CampaignController) GetCampaignStats(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.Atoi(chi.URLParam(r, "campaignId"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	stats, err := c.Reader.CampaignStats(campaignID)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": err.Error()})
			return
		}
		log.Println("⚠️ failed to fetch campaign stats:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "An error occurred while fetching campaign statistics."})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (c *CampaignController) DeliveryReceipt(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignID   *int   `json:"campaignId"`
		MobileNumber *int64 `json:"mobileNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.CampaignID == nil || body.MobileNumber == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Both campaignId and mobileNumber are required in the request body.",
		})
		return
	}

	receipt, err := c.Reader.DeliveryReceipt(*body.CampaignID, *body.MobileNumber)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": err.Error()})
			return
		}
		log.Println("⚠️ failed to fetch delivery receipt:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "An error occurred while fetching the delivery receipt."})
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
