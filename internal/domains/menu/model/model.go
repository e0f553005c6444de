package model

import (
	"fmt"
	"strconv"
	"strings"

	hotelModel "saapadu/internal/domains/hotel/model"
)

const (
	EntityName = "menu item"

	// DefaultPrice is shown for entries stored without a price.
	DefaultPrice = 50
)

// MenuItem is one entry of a hotel menu, addressed by its position.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	HotelID     int     `json:"hotelId"`
	Hotel       string  `json:"hotel"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func FormatID(hotelID int, category string, index int) string {
	return fmt.Sprintf("%d-%s-%d", hotelID, category, index)
}

// ParseID splits an id built by FormatID.
func ParseID(id string) (hotelID int, category string, index int, ok bool) {
	first := strings.Index(id, "-")
	last := strings.LastIndex(id, "-")

	if first <= 0 || last <= first+1 || last == len(id)-1 {
		return 0, "", 0, false
	}

	hotelID, err := strconv.Atoi(id[:first])
	if err != nil {
		return 0, "", 0, false
	}

	index, err = strconv.Atoi(id[last+1:])
	if err != nil || index < 0 {
		return 0, "", 0, false
	}

	return hotelID, id[first+1 : last], index, true
}

func FromEntry(hotel hotelModel.Hotel, category string, index int, entry hotelModel.MenuEntry) MenuItem {
	price := entry.Price.Float()
	if price == 0 {
		price = DefaultPrice
	}

	return MenuItem{
		ID:          FormatID(hotel.ID, category, index),
		Name:        entry.Name,
		HotelID:     hotel.ID,
		Hotel:       hotel.Name,
		Category:    category,
		Price:       price,
		Description: entry.Description,
	}
}
