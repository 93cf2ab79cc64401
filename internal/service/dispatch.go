// internal/service/dispatch.go
package service

import (
	"encoding/json"

	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/queue"
)

// DispatchGateway is the fire-and-forget entry to the pipeline: serialize
// the intent, publish it, done. Success means the publish was accepted, not
// that anything was processed; callers never learn the resulting campaign
// or order id synchronously.
type DispatchGateway struct {
	Queue queue.Publisher
}

func (g *DispatchGateway) SubmitCampaign(msg model.CampaignMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return g.Queue.Publish(queue.ChannelNewCampaign, body)
}

func (g *DispatchGateway) SubmitOrder(msg model.OrderMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return g.Queue.Publish(queue.ChannelNewOrder, body)
}
