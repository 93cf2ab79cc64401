// internal/controller/order_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minicrm/mini-crm-be/internal/model"
	"github.com/minicrm/mini-crm-be/internal/repository"
	"github.com/minicrm/mini-crm-be/internal/service"
)

type OrderController struct {
	Gateway      *service.DispatchGateway
	CustomerRepo repository.CustomerRepositoryInterface
}

// AddOrder publishes the order intent to the NEW_ORDER channel. All fields
// must be present; nothing beyond presence is checked here.
func (c *OrderController) AddOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID     *int     `json:"customerId"`
		CustomerName   *string  `json:"customerName"`
		CustomerEmail  *string  `json:"customerEmail"`
		MobileNumber   *int64   `json:"mobileNumber"`
		PurchaseAmount *float64 `json:"purchaseAmount"`
		PurchaseDate   *string  `json:"purchaseDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.CustomerID == nil || body.CustomerName == nil || body.CustomerEmail == nil ||
		body.MobileNumber == nil || body.PurchaseAmount == nil || body.PurchaseDate == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "complete customer credentials are required",
		})
		return
	}

	payload := model.OrderMessage{
		CustomerID:     *body.CustomerID,
		CustomerName:   *body.CustomerName,
		CustomerEmail:  *body.CustomerEmail,
		MobileNumber:   *body.MobileNumber,
		PurchaseAmount: *body.PurchaseAmount,
		PurchaseDate:   *body.PurchaseDate,
	}
	if err := c.Gateway.SubmitOrder(payload); err != nil {
		log.Println("⚠️ failed to publish order:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Error publishing event"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Event published",
		"event":   payload,
	})
}

func (c *OrderController) GetCustomerByMobile(w http.ResponseWriter, r *http.Request) {
	mobile, err := strconv.ParseInt(chi.URLParam(r, "mobileNumber"), 10, 64)
	if err != nil {
		http.Error(w, "invalid mobile number", http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerRepo.GetByMobile(mobile)
	if err != nil {
		log.Println("⚠️ failed to fetch customer:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Internal server error"})
		return
	}
	if customer == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Customer not found"})
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
