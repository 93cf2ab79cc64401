// internal/service/campaign_worker.go
package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
)

// CampaignWorker consumes NEW_CAMPAIGN messages. Each message is handled
// start to finish with no state carried between messages: persist the
// campaign, resolve the live audience, render and simulate a send per
// recipient, then bulk-write the whole delivery log in one statement.
type CampaignWorker struct {
	CampaignRepo repository.CampaignRepositoryInterface
	LogRepo      repository.CommunicationLogRepositoryInterface
	Resolver     AudienceResolver

	// Outcome is swappable for tests; nil means the real simulator.
	Outcome func() string
}

func (w *CampaignWorker) Handle(body []byte) error {
	var msg model.CampaignMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("invalid campaign payload: %w", err)
	}

	campaign := &model.Campaign{
		SegmentID: msg.SegmentID,
		// Advisory figure from the caller; the live set below is what
		// actually gets messaged.
		AudienceSize: msg.AudienceSize,
	}
	if err := w.CampaignRepo.Create(campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	members, err := w.Resolver.Resolve(msg.SegmentID)
	if err != nil {
		// Campaign row stays; it will report 0 sent / 0 failed.
		return fmt.Errorf("failed to resolve segment %d for campaign %d: %w", msg.SegmentID, campaign.ID, err)
	}

	outcome := w.Outcome
	if outcome == nil {
		outcome = SimulateOutcome
	}

	logs := make([]model.CommunicationLog, 0, len(members))
	for _, m := range members {
		logs = append(logs, model.CommunicationLog{
			CustomerID: m.ID,
			CampaignID: campaign.ID,
			Message:    Personalize(msg.Message, m.Name),
			Status:     outcome(),
		})
	}

	if err := w.LogRepo.BulkInsert(logs); err != nil {
		return fmt.Errorf("failed to bulk insert communication logs for campaign %d: %w", campaign.ID, err)
	}

	log.Printf("✅ campaign %d processed, %d recipients", campaign.ID, len(logs))
	return nil
}
