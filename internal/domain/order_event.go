package domain

type OrderReceivedEvent struct {
	OrderID      int64   `json:"orderId"`
	CustomerName string  `json:"customerName"`
	OrderTotal   float64 `json:"orderTotal"`
	ItemCount    int     `json:"itemCount"`
	OrderDate    string  `json:"orderDate"`
}
