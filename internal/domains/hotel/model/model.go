package model

import (
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
)

const (
	EntityName = "hotel"

	DefaultRating  = 4.5
	DefaultReviews = 125

	// ImageDirectory is the object storage prefix for uploaded hotel images.
	ImageDirectory = "hotels"
)

// Hotel is a stored hotel record. Only id and name are always written; empty members are
// left out so records that never had them are not given zero ratings or blank urls.
type Hotel struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Area         string        `json:"area,omitzero"`
	Location     string        `json:"location,omitzero"`
	Cuisine      string        `json:"cuisine,omitzero"`
	Distance     gModel.Number `json:"distance,omitzero"`
	MinPrice     gModel.Number `json:"minPrice,omitzero"`
	DeliveryFee  gModel.Number `json:"deliveryFee,omitzero"`
	DeliveryTime string        `json:"deliveryTime,omitzero"`
	Contact      string        `json:"contact,omitzero"`
	ImageURL     string        `json:"imageUrl,omitzero"`
	Rating       gModel.Number `json:"rating,omitzero"`
	Reviews      int           `json:"reviews,omitzero"`
	Menu         Menu          `json:"menu"`
	Extras       gModel.Extras `json:"-"`
}

func (h *Hotel) UnmarshalJSON(data []byte) error {
	type alias Hotel

	var value alias

	extras, err := gModel.DecodeWithExtras(data, &value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*h = Hotel(value)
	h.Extras = extras

	return nil
}

func (h Hotel) MarshalJSON() ([]byte, error) {
	type alias Hotel

	return gModel.EncodeWithExtras(alias(h), h.Extras)
}

// Clone copies the hotel including its menu, so the copy can be edited freely.
func (h Hotel) Clone() Hotel {
	h.Menu = h.Menu.Clone()

	return h
}

// HasImage reports whether the hotel carries a real image rather than the placeholder.
func (h Hotel) HasImage() bool {
	return h.ImageURL != "" && h.ImageURL != constant.ImagePlaceholder
}

// NextID is one more than the highest id in hotels, or 1 when there are none.
// Two writers computing it at the same time can collide; storage has no cross-process lock.
func NextID(hotels []Hotel) int {
	maxID := 0
	for _, hotel := range hotels {
		maxID = max(maxID, hotel.ID)
	}

	return maxID + 1
}

// IndexOf returns the position of the hotel with id, or -1.
func IndexOf(hotels []Hotel, id int) int {
	for index, hotel := range hotels {
		if hotel.ID == id {
			return index
		}
	}

	return -1
}
