package http

import "order-intake/internal/domain"

type CustomerInfoRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
}

type OrderItemRequest struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	ItemTotal float64 `json:"itemTotal"`
}

type CreateOrderRequest struct {
	CustomerInfo *CustomerInfoRequest `json:"customerInfo"`
	Items        []OrderItemRequest   `json:"items"`
	Total        float64              `json:"total"`
}

func (r CreateOrderRequest) toSubmission() domain.OrderSubmission {
	sub := domain.OrderSubmission{Total: r.Total}
	if r.CustomerInfo != nil {
		sub.CustomerInfo = &domain.CustomerInfo{
			Name:            r.CustomerInfo.Name,
			Email:           r.CustomerInfo.Email,
			Phone:           r.CustomerInfo.Phone,
			SpecialRequests: r.CustomerInfo.SpecialRequests,
		}
	}
	if len(r.Items) > 0 {
		sub.Items = make([]domain.SubmittedItem, 0, len(r.Items))
		for _, it := range r.Items {
			sub.Items = append(sub.Items, domain.SubmittedItem{
				Name:      it.Name,
				Price:     it.Price,
				Qty:       it.Qty,
				ItemTotal: it.ItemTotal,
			})
		}
	}
	return sub
}
