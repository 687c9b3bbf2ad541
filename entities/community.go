package entities

const (
	ContributionPending   = "Pending"
	ContributionFulfilled = "Fulfilled"
)

type ConsumerRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Contribution is one consumer's line items pending aggregation into a
// community-wide order. Fulfilled mirrors Status for quick filtering.
type Contribution struct {
	ID        string      `json:"id"`       // PO-###
	OrderID   string      `json:"order_id"` // parent CO-###
	Consumer  ConsumerRef `json:"consumer"`
	Date      string      `json:"date"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
	Fulfilled bool        `json:"fulfilled"`
}

type CommunityOrder struct {
	ID           string      `json:"id"` // CO-###
	Date         string      `json:"date"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	DeliveryDate string      `json:"delivery_date"`
}

type AgentContact struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Contact string `json:"contact"`
}

type HeadContact struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	AlternateContact string `json:"alternate_contact"`
}

type CommunityProfile struct {
	Name         string       `json:"name"`
	ID           string       `json:"id"` // COM-10<n>
	Address      string       `json:"address"`
	Region       string       `json:"region"`
	Agent        AgentContact `json:"agent"`
	Head         HeadContact  `json:"head"`
	MembersCount int          `json:"members_count"`
	Established  string       `json:"established"`
}

type NewConsumer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JoinedDate string `json:"joined_date"`
	Community  string `json:"community"`
}
