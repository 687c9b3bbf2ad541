package entities

// DisplayDate is the long-form date layout used across the dashboard.
const DisplayDate = "January 2, 2006"

const (
	StatusProcessing = "Processing"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

func ValidOrderStatus(s string) bool {
	return s == StatusProcessing || s == StatusDelivered || s == StatusCancelled
}

type OrderItem struct {
	Crop     string `json:"crop"`
	Quantity string `json:"quantity"`
}

type ConsumerOrder struct {
	ID           string      `json:"id"` // ORD-###
	Date         string      `json:"date"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	DeliveryDate string      `json:"delivery_date"`
}

// ConsumerProfile doubles as the consumer's own singleton profile (ID empty)
// and as a community directory entry (ID set, C-###).
type ConsumerProfile struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Community   string `json:"community"`
	CommunityID string `json:"community_id"`
	Address     string `json:"address"`
	JoinedDate  string `json:"joined_date"`
}
