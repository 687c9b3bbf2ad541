package repository

import "farmlink/entities"

type ConsumerRepository interface {
	ListOrders() []entities.ConsumerOrder
	FindOrder(id string) (entities.ConsumerOrder, bool)
	// InsertOrder assigns the next ORD-### id and prepends.
	InsertOrder(o entities.ConsumerOrder) entities.ConsumerOrder

	Profile() entities.ConsumerProfile
	SaveProfile(p entities.ConsumerProfile)
}
