// internal/service/delivery.go
package service

import (
	"math/rand"
	"strings"

	"github.com/minicrm/mini-crm-be/internal/model"
)

const namePlaceholder = "[Name]"

// messageSuccessRate is the fixed probability a simulated send lands.
const messageSuccessRate = 0.7

// Personalize substitutes every [Name] in the template with the recipient's
// name. An empty name leaves the placeholder literal in place.
func Personalize(template, name string) string {
	if name == "" {
		return template
	}
	return strings.ReplaceAll(template, namePlaceholder, name)
}

// SimulateOutcome draws one delivery result: SENT with probability 0.70,
// FAILED otherwise. Draws share the package rand source and are independent
// across recipients, so large audiences converge to the 70/30 split.
func SimulateOutcome() string {
	if rand.Float64() < messageSuccessRate {
		return model.StatusSent
	}
	return model.StatusFailed
}
