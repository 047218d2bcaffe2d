package domain

import "time"

type OrderStatus string

const (
	// StatusPending is the only status an order ever holds; the intake
	// service has no transition flow.
	StatusPending OrderStatus = "pending"
)

// TimestampLayout renders timestamps the way the public API reports them:
// UTC, millisecond precision, literal Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type LineItem struct {
	ItemName  string  `json:"itemName"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ItemTotal float64 `json:"itemTotal"`
}

// Order is immutable once stored. Customer-supplied values are kept
// verbatim; the server never recomputes prices or totals.
type Order struct {
	OrderID         int64       `json:"orderId" gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	SpecialRequests string      `json:"specialRequests"`
	Items           []LineItem  `json:"items" gorm:"serializer:json"`
	OrderTotal      float64     `json:"orderTotal"`
	ItemCount       int         `json:"itemCount"`
	OrderDate       string      `json:"orderDate"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
}

type CustomerInfo struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

type SubmittedItem struct {
	Name      string
	Price     float64
	Qty       int
	ItemTotal float64
}

// OrderSubmission is the caller-declared payload for a new order.
type OrderSubmission struct {
	CustomerInfo *CustomerInfo
	Items        []SubmittedItem
	Total        float64
}
