// Package appstate merges the three ledgers into the single read facade the
// dashboard views consume.
package appstate

import (
	communitySvc "farmlink/pkg/community/service"
	consumerSvc "farmlink/pkg/consumer/service"
	farmerSvc "farmlink/pkg/farmer/service"
)

type State struct {
	Farmer    farmerSvc.FarmerService
	Consumer  consumerSvc.ConsumerService
	Community communitySvc.CommunityService
}

func New(f farmerSvc.FarmerService, c consumerSvc.ConsumerService, h communitySvc.CommunityService) *State {
	return &State{Farmer: f, Consumer: c, Community: h}
}

// Snapshot is a shallow merge of the ledgers' read views. Keys are disjoint
// across ledgers; adding a colliding key is a bug, not a silent override.
func (s *State) Snapshot() map[string]any {
	out := map[string]any{
		"farmers":        s.Farmer.Farmers(),
		"farmer_updates": s.Farmer.Updates(),
		"active_crops":   s.Farmer.Crops(),

		"consumer_orders":  s.Consumer.Orders(),
		"consumer_profile": s.Consumer.Profile(),

		"consumer_contributions": s.Community.Contributions(),
		"community_orders":       s.Community.Orders(),
		"community_profile":      s.Community.Profile(),
		"consumer_profiles":      s.Community.Consumers(),
		"new_consumers":          s.Community.NewConsumers(),
	}
	if cur, ok := s.Community.CurrentConsumer(); ok {
		out["current_consumer"] = cur
	} else {
		out["current_consumer"] = nil
	}
	return out
}
