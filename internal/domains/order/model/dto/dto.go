package dto

import (
	"saapadu/internal/domains/order/model"
	"saapadu/shared/constant"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,orderstatus"`
}

type OrderFilter struct {
	Status string `json:"status" validate:"omitempty,orderstatus"`
}

// Match compares against the stored status, so an order without one only matches no filter.
func (f OrderFilter) Match(order model.Order) bool {
	return f.Status == constant.Empty || order.Status == f.Status
}

type OrderItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type OrderResponse struct {
	OrderID      string              `json:"orderId"`
	CustomerName string              `json:"customerName"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	HotelName    string              `json:"hotelName"`
	Items        []OrderItemResponse `json:"items"`
	ItemCount    int                 `json:"itemCount"`
	Total        float64             `json:"total"`
	Status       string              `json:"status"`
	Date         string              `json:"date"`
}

func (r *OrderResponse) FromModel(order model.Order) {
	r.OrderID = order.OrderID.String()
	if r.OrderID == constant.Empty {
		r.OrderID = constant.NotAvailable
	}

	r.CustomerName = order.CustomerName
	r.Email = order.Email
	r.Phone = order.Phone
	r.HotelName = order.HotelName
	r.Total = order.Total.Float()
	r.Status = order.DisplayStatus()
	r.Date = order.Timestamp.Date()
	r.ItemCount = len(order.Items)

	r.Items = make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		r.Items[i] = OrderItemResponse{Name: item.Name, Price: item.Price.Float(), Quantity: item.Units()}
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(orders []model.Order) {
	r.TotalData = len(orders)

	r.Orders = make([]OrderResponse, len(orders))
	for i, order := range orders {
		r.Orders[i].FromModel(order)
	}
}
