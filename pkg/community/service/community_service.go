package service

import "farmlink/entities"

// CommunityPatch carries partial community-profile edits; nil fields are left
// unchanged. An address change carrying a "Village <Letter>" token also
// recomputes the community id, and the collective's name when the current
// name still mentions "Village".
type CommunityPatch struct {
	Name    *string                `json:"name"`
	Address *string                `json:"address"`
	Region  *string                `json:"region"`
	Head    *entities.HeadContact  `json:"head"`
	Agent   *entities.AgentContact `json:"agent"`
}

// DemandLine is one crop's pending total across unfulfilled contributions.
// Quantity is display-formatted ("8 kg"); malformed source quantities surface
// as "NaN kg" rather than being validated away.
type DemandLine struct {
	Crop     string `json:"crop"`
	Quantity string `json:"quantity"`
}

type CommunityService interface {
	Contributions() []entities.Contribution
	// FulfillContribution marks a contribution Fulfilled; false on miss.
	FulfillContribution(id string) bool

	Orders() []entities.CommunityOrder
	// CreateCommunityOrder aggregates every unfulfilled contribution into one
	// Processing order and marks them fulfilled. False when nothing is pending.
	CreateCommunityOrder() (entities.CommunityOrder, bool)
	// AddCommunityOrder places a direct order, bypassing aggregation.
	AddCommunityOrder(items []entities.OrderItem) entities.CommunityOrder
	// UpdateOrderStatus patches an order's status; false on miss.
	UpdateOrderStatus(id, status string) (entities.CommunityOrder, bool)

	Profile() entities.CommunityProfile
	UpdateProfile(p CommunityPatch) entities.CommunityProfile

	Consumers() []entities.ConsumerProfile
	// ConsumerDetails looks up a directory entry and records it as the
	// current selection; false on miss (selection cleared).
	ConsumerDetails(id string) (entities.ConsumerProfile, bool)
	CurrentConsumer() (entities.ConsumerProfile, bool)
	NewConsumers() []entities.NewConsumer

	// DemandSummary totals pending quantities per crop, first-seen order.
	DemandSummary() []DemandLine
}
