// internal/service/stats_reader.go
package service

import (
	appErrors "github.com/minicrm/mini-crm-be/internal/errors"
	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
)

// StatsReader is the read-only side of the pipeline. It queries whatever
// the workers have persisted so far, so a campaign can be visible before
// any of its delivery rows are.
type StatsReader struct {
	CampaignRepo repository.CampaignRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
	LogRepo      repository.CommunicationLogRepositoryInterface
}

func (r *StatsReader) CampaignStats(campaignID int) (*model.CampaignStats, error) {
	return r.CampaignRepo.GetStats(campaignID)
}

// DeliveryReceipt resolves the mobile number to a customer and returns that
// customer's single log entry for the campaign. "Customer unknown" and
// "no entry yet" surface as distinct not-found kinds.
func (r *StatsReader) DeliveryReceipt(campaignID int, mobileNumber int64) (*model.CommunicationLog, error) {
	customer, err := r.CustomerRepo.GetByMobile(mobileNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, appErrors.NewCustomerNotFound(mobileNumber)
	}
	return r.LogRepo.GetByCampaignAndCustomer(campaignID, customer.ID)
}
