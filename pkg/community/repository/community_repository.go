package repository

import "farmlink/entities"

type CommunityRepository interface {
	ListContributions() []entities.Contribution
	FindContribution(id string) (entities.Contribution, bool)
	// ReplaceContribution swaps the stored record matching c.ID; false on miss.
	ReplaceContribution(c entities.Contribution) bool

	ListOrders() []entities.CommunityOrder
	FindOrder(id string) (entities.CommunityOrder, bool)
	// InsertOrder assigns the next CO-### id and prepends.
	InsertOrder(o entities.CommunityOrder) entities.CommunityOrder
	ReplaceOrder(o entities.CommunityOrder) bool

	Profile() entities.CommunityProfile
	SaveProfile(p entities.CommunityProfile)

	ListConsumers() []entities.ConsumerProfile
	FindConsumer(id string) (entities.ConsumerProfile, bool)
	ListNewConsumers() []entities.NewConsumer

	// CurrentConsumer is the head's active detail-view selection.
	CurrentConsumer() (entities.ConsumerProfile, bool)
	SetCurrentConsumer(p *entities.ConsumerProfile)
}
