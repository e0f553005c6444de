package dto

import (
	menuDto "saapadu/internal/domains/menu/model/dto"
	orderDto "saapadu/internal/domains/order/model/dto"
	reviewDto "saapadu/internal/domains/review/model/dto"
)

// PanelQuery selects a panel and its filters. Filters a panel does not support are ignored.
type PanelQuery struct {
	Panel    string `json:"panel"    validate:"required"`
	HotelID  int    `json:"hotel"    validate:"omitempty,gt=0"`
	Category string `json:"category" validate:"omitempty,category"`
	Status   string `json:"status"   validate:"omitempty,orderstatus"`
	Rating   int    `json:"rating"   validate:"omitempty,min=1,max=5"`
}

func (q PanelQuery) MenuFilter() menuDto.MenuFilter {
	return menuDto.MenuFilter{HotelID: q.HotelID, Category: q.Category}
}

func (q PanelQuery) OrderFilter() orderDto.OrderFilter {
	return orderDto.OrderFilter{Status: q.Status}
}

func (q PanelQuery) ReviewFilter() reviewDto.ReviewFilter {
	return reviewDto.ReviewFilter{HotelID: q.HotelID, Rating: q.Rating}
}
