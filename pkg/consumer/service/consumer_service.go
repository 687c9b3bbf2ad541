package service

import "farmlink/entities"

// ProfilePatch carries partial profile edits; nil fields are left unchanged.
// An address change carrying a "Village <Letter>" token also recomputes the
// community name and id.
type ProfilePatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type ConsumerService interface {
	Orders() []entities.ConsumerOrder
	// AddOrder places a Processing order for the given items, delivery in 7 days.
	AddOrder(items []entities.OrderItem) entities.ConsumerOrder
	// Reorder clones an existing order's items into a new order; false on miss.
	Reorder(orderID string) (entities.ConsumerOrder, bool)

	Profile() entities.ConsumerProfile
	UpdateProfile(p ProfilePatch) entities.ConsumerProfile
}
