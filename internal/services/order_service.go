package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"order-intake/internal/domain"
	rabbit "order-intake/internal/infra/rabbitmq"
	"order-intake/internal/repository"
)

var ErrMissingOrderInfo = errors.New("missing required order information")

type OrderService struct {
	repo      repository.OrderRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
	}
}

// CreateOrder validates the submission and stores a new pending order.
// A zero total fails validation the same as an absent one; free orders are
// not a thing this intake accepts.
func (u *OrderService) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.Order, error) {
	if sub.CustomerInfo == nil || len(sub.Items) == 0 || sub.Total == 0 {
		return nil, ErrMissingOrderInfo
	}

	items := make([]domain.LineItem, 0, len(sub.Items))
	itemCount := 0
	for _, it := range sub.Items {
		items = append(items, domain.LineItem{
			ItemName:  it.Name,
			Price:     it.Price,
			Quantity:  it.Qty,
			ItemTotal: it.ItemTotal,
		})
		itemCount += it.Qty
	}

	order := &domain.Order{
		CustomerName:    sub.CustomerInfo.Name,
		CustomerEmail:   sub.CustomerInfo.Email,
		CustomerPhone:   sub.CustomerInfo.Phone,
		SpecialRequests: sub.CustomerInfo.SpecialRequests,
		Items:           items,
		OrderTotal:      sub.Total,
		ItemCount:       itemCount,
		OrderDate:       domain.Timestamp(time.Now()),
		Status:          domain.StatusPending,
	}

	if err := u.repo.Save(order); err != nil {
		return nil, err
	}

	log.Printf("Order received: %d", order.OrderID)

	go u.publishOrderReceivedEvent(context.Background(), order)

	return order, nil
}

func (u *OrderService) publishOrderReceivedEvent(ctx context.Context, order *domain.Order) {
	if u.publisher == nil {
		return
	}

	evt := domain.OrderReceivedEvent{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		OrderTotal:   order.OrderTotal,
		ItemCount:    order.ItemCount,
		OrderDate:    order.OrderDate,
	}

	if err := u.publisher.Publish(ctx, "order.received", evt); err != nil {
		log.Printf("Failed to publish order.received event: %v", err)
	}
}

// ListOrders returns every stored order in creation order.
func (u *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := u.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (u *OrderService) CountOrders(ctx context.Context) (int64, error) {
	return u.repo.Count()
}

const csvHeader = "Order ID,Customer Name,Email,Phone,Order Date,Total,Items,Status"

// ExportCSV renders every stored order as one CSV document. Fields are not
// escaped against embedded quotes or commas; the format stays byte-compatible
// with what existing spreadsheet consumers already parse.
func (u *OrderService) ExportCSV(ctx context.Context) (string, error) {
	orders, err := u.repo.FindAll()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, o := range orders {
		frags := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			frags = append(frags, fmt.Sprintf("%dx %s", it.Quantity, it.ItemName))
		}
		b.WriteString(fmt.Sprintf("%d,\"%s\",\"%s\",\"%s\",\"%s\",%s,\"%s\",%s\n",
			o.OrderID,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.OrderDate,
			strconv.FormatFloat(o.OrderTotal, 'f', -1, 64),
			strings.Join(frags, "; "),
			o.Status,
		))
	}

	return b.String(), nil
}
