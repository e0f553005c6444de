package model

import (
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
)

const EntityName = "order"

type OrderItem struct {
	Name     string        `json:"name"`
	Price    gModel.Number `json:"price"`
	Quantity gModel.Number `json:"quantity,omitempty"`
	Extras   gModel.Extras `json:"-"`
}

func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type alias OrderItem

	var value alias

	extras, err := gModel.DecodeWithExtras(data, &value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*i = OrderItem(value)
	i.Extras = extras

	return nil
}

func (i OrderItem) MarshalJSON() ([]byte, error) {
	type alias OrderItem

	return gModel.EncodeWithExtras(alias(i), i.Extras)
}

// Units is the ordered quantity, 1 when it was not recorded.
func (i OrderItem) Units() float64 {
	if i.Quantity == 0 {
		return 1
	}

	return i.Quantity.Float()
}

// Order is written by the storefront. The admin service only changes its status.
type Order struct {
	OrderID      gModel.ID        `json:"orderId,omitzero"`
	CustomerName string           `json:"customerName,omitempty"`
	Email        string           `json:"email,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	HotelName    string           `json:"hotelName,omitempty"`
	Items        []OrderItem      `json:"items,omitempty"`
	Total        gModel.Number    `json:"total,omitempty"`
	Status       string           `json:"status,omitempty"`
	Timestamp    gModel.Timestamp `json:"timestamp,omitzero"`
	Extras       gModel.Extras    `json:"-"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order

	var value alias

	extras, err := gModel.DecodeWithExtras(data, &value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*o = Order(value)
	o.Extras = extras

	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order

	return gModel.EncodeWithExtras(alias(o), o.Extras)
}

// CustomerKey identifies the customer who placed the order: the email, else the name.
func (o Order) CustomerKey() string {
	if o.Email != constant.Empty {
		return o.Email
	}

	return o.CustomerName
}

// HotelOrUnknown is the hotel name used for grouping.
func (o Order) HotelOrUnknown() string {
	if o.HotelName == constant.Empty {
		return constant.Unknown
	}

	return o.HotelName
}

// DisplayStatus is the status shown for the order, Pending when none was recorded.
func (o Order) DisplayStatus() string {
	if o.Status == constant.Empty {
		return constant.OrderStatusPending
	}

	return o.Status
}

// IndexOf returns the position of the order with id, or -1.
func IndexOf(orders []Order, id string) int {
	for index, order := range orders {
		if !order.OrderID.IsZero() && order.OrderID.String() == id {
			return index
		}
	}

	return -1
}
