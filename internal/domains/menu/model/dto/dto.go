package dto

import (
	hotelModel "saapadu/internal/domains/hotel/model"
	"saapadu/internal/domains/menu/model"
)

type CreateMenuItemRequest struct {
	HotelID     int     `json:"hotelId"     validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,category"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateMenuItemRequest) ToEntry() hotelModel.MenuEntry {
	return hotelModel.NewMenuEntry(c.Name, c.Price, c.Description)
}

// UpdateMenuItemRequest replaces an entry. A different hotel or category moves the entry
// to the end of that category, which gives it a new id.
type UpdateMenuItemRequest struct {
	HotelID     int     `json:"hotelId"     validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,category"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

// Apply edits entry with the request fields. Members the storefront added stay.
func (u *UpdateMenuItemRequest) Apply(entry hotelModel.MenuEntry) hotelModel.MenuEntry {
	return entry.Edited(u.Name, u.Price, u.Description)
}

// MenuFilter narrows the flattened menu. Zero fields match everything and set fields
// must all match.
type MenuFilter struct {
	HotelID  int    `json:"hotelId"  validate:"omitempty,gt=0"`
	Category string `json:"category" validate:"omitempty,category"`
}

func (f MenuFilter) Match(item model.MenuItem) bool {
	if f.HotelID != 0 && item.HotelID != f.HotelID {
		return false
	}

	if f.Category != "" && item.Category != f.Category {
		return false
	}

	return true
}

type GetMenuItemsResponse struct {
	Items     []model.MenuItem `json:"items"`
	TotalData int              `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(items []model.MenuItem) {
	r.Items = items
	if r.Items == nil {
		r.Items = []model.MenuItem{}
	}

	r.TotalData = len(r.Items)
}

type MenuItemResponse struct {
	model.MenuItem
}
