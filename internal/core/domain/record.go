package domain

// RawItem is one list row as returned by the remote API, before any
// mapping. Fields holds the expanded column values keyed by internal
// column name; values keep their loose remote typing (strings, numbers,
// arrays, lookup objects, null).
type RawItem struct {
	ID        string         `json:"id"`
	CreatedAt string         `json:"createdDateTime"`
	Fields    map[string]any `json:"fields"`
}

// Service is the short transport-service record used by the day and
// upcoming views. Dates are dd/mm/yyyy display strings; times are HH:MM.
type Service struct {
	ID              int    `json:"id"`
	Operator        string `json:"operator"`
	Date            string `json:"date"`
	CounterpartName string `json:"counterpart_name"`
	PickupTime      string `json:"pickup_time"`
	DropoffTime     string `json:"dropoff_time"`
	ServiceType     string `json:"service_type"`
}

// ServiceDetail is the long transport-service record with the full
// pickup/destination/payment breakdown.
type ServiceDetail struct {
	ID                int    `json:"id"`
	PickupDate        string `json:"pickup_date"`
	MemberID          string `json:"member_id"`
	TransportedPerson string `json:"transported_person"`
	StartTime         string `json:"start_time"`
	PickupCity        string `json:"pickup_city"`
	PickupAddress     string `json:"pickup_address"`
	ServiceType       string `json:"service_type"`
	Wheelchair        string `json:"wheelchair"`
	Requester         string `json:"requester"`
	Reason            string `json:"reason"`
	ArrivalTime       string `json:"arrival_time"`
	DestCity          string `json:"dest_city"`
	DestAddress       string `json:"dest_address"`
	Payment           string `json:"payment"`
	CollectionStatus  string `json:"collection_status"`
	Operator          string `json:"operator"`
	Operator2         string `json:"operator2"`
	Vehicle           string `json:"vehicle"`
	Duration          string `json:"duration"`
	DistanceKm        string `json:"distance_km"`
	PaymentType       string `json:"payment_type"`
	TransferDate      string `json:"transfer_date"`
	ReceiptDate       string `json:"receipt_date"`
	Status            string `json:"status"`
	PickupNotes       string `json:"pickup_notes"`
	ArrivalNotes      string `json:"arrival_notes"`
	ClosingNotes      string `json:"closing_notes"`
}

// Card is a membership card still to be produced.
type Card struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Member is a registered association member.
type Member struct {
	ID           int    `json:"id"`
	MemberID     string `json:"member_id"`
	FullName     string `json:"full_name"`
	FiscalCode   string `json:"fiscal_code"`
	CardNumber   string `json:"card_number"`
	CardExpiry   string `json:"card_expiry"`
	Phone        string `json:"phone"`
	MemberType   string `json:"member_type"`
	IsOperator   bool   `json:"is_operator"`
	IsActive     bool   `json:"is_active"`
	Availability string `json:"availability"`
	Note         string `json:"note"`
}
