package dto

import (
	"saapadu/internal/domains/hotel/model"
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
)

type CreateHotelRequest struct {
	Name         string  `json:"name"         validate:"required,max=100"`
	Area         string  `json:"area"         validate:"omitempty,max=100"`
	Location     string  `json:"location"     validate:"omitempty,max=200"`
	Cuisine      string  `json:"cuisine"      validate:"omitempty,max=100"`
	Distance     float64 `json:"distance"     validate:"gte=0"`
	MinPrice     float64 `json:"minPrice"     validate:"gte=0"`
	DeliveryFee  float64 `json:"deliveryFee"  validate:"gte=0"`
	DeliveryTime string  `json:"deliveryTime" validate:"omitempty,max=50"`
	Contact      string  `json:"contact"      validate:"omitempty,max=50"`
	ImageURL     string  `json:"imageUrl"     validate:"omitempty,mimetypes=image/png image/jpeg image/jpg image/gif image/webp image/svg+xml,maxfilesize=5"`
}

// ToModel builds a new hotel with the default rating, review count and menu.
func (c *CreateHotelRequest) ToModel(id int, imageURL string) model.Hotel {
	if imageURL == constant.Empty {
		imageURL = constant.ImagePlaceholder
	}

	return model.Hotel{
		ID:           id,
		Name:         c.Name,
		Area:         c.Area,
		Location:     c.Location,
		Cuisine:      c.Cuisine,
		Distance:     gModel.Number(c.Distance),
		MinPrice:     gModel.Number(c.MinPrice),
		DeliveryFee:  gModel.Number(c.DeliveryFee),
		DeliveryTime: c.DeliveryTime,
		Contact:      c.Contact,
		ImageURL:     imageURL,
		Rating:       model.DefaultRating,
		Reviews:      model.DefaultReviews,
		Menu:         model.DefaultMenu(),
	}
}

// UpdateHotelRequest replaces the editable fields of a hotel. Menu, rating and review
// count are kept, and so is the current image when imageUrl is left out.
type UpdateHotelRequest struct {
	Name         string  `json:"name"         validate:"required,max=100"`
	Area         string  `json:"area"         validate:"omitempty,max=100"`
	Location     string  `json:"location"     validate:"omitempty,max=200"`
	Cuisine      string  `json:"cuisine"      validate:"omitempty,max=100"`
	Distance     float64 `json:"distance"     validate:"gte=0"`
	MinPrice     float64 `json:"minPrice"     validate:"gte=0"`
	DeliveryFee  float64 `json:"deliveryFee"  validate:"gte=0"`
	DeliveryTime string  `json:"deliveryTime" validate:"omitempty,max=50"`
	Contact      string  `json:"contact"      validate:"omitempty,max=50"`
	ImageURL     string  `json:"imageUrl"     validate:"omitempty,mimetypes=image/png image/jpeg image/jpg image/gif image/webp image/svg+xml,maxfilesize=5"`
}

func (u *UpdateHotelRequest) ApplyTo(hotel model.Hotel, imageURL string) model.Hotel {
	if imageURL == constant.Empty {
		imageURL = hotel.ImageURL
	}

	if imageURL == constant.Empty {
		imageURL = constant.ImagePlaceholder
	}

	hotel.Name = u.Name
	hotel.Area = u.Area
	hotel.Location = u.Location
	hotel.Cuisine = u.Cuisine
	hotel.Distance = gModel.Number(u.Distance)
	hotel.MinPrice = gModel.Number(u.MinPrice)
	hotel.DeliveryFee = gModel.Number(u.DeliveryFee)
	hotel.DeliveryTime = u.DeliveryTime
	hotel.Contact = u.Contact
	hotel.ImageURL = imageURL

	return hotel
}

type HotelResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Area         string     `json:"area"`
	Location     string     `json:"location"`
	Cuisine      string     `json:"cuisine"`
	Distance     float64    `json:"distance"`
	MinPrice     float64    `json:"minPrice"`
	DeliveryFee  float64    `json:"deliveryFee"`
	DeliveryTime string     `json:"deliveryTime"`
	Contact      string     `json:"contact"`
	ImageURL     string     `json:"imageUrl"`
	Rating       float64    `json:"rating"`
	Reviews      int        `json:"reviews"`
	MenuCount    int        `json:"menuCount"`
	Menu         model.Menu `json:"menu"`
}

func (r *HotelResponse) FromModel(hotel model.Hotel) {
	r.ID = hotel.ID
	r.Name = hotel.Name
	r.Area = hotel.Area
	r.Location = hotel.Location
	r.Cuisine = hotel.Cuisine
	r.Distance = hotel.Distance.Float()
	r.MinPrice = hotel.MinPrice.Float()
	r.DeliveryFee = hotel.DeliveryFee.Float()
	r.DeliveryTime = hotel.DeliveryTime
	r.Contact = hotel.Contact
	r.ImageURL = hotel.ImageURL
	r.Rating = hotel.Rating.Float()
	r.Reviews = hotel.Reviews
	r.MenuCount = hotel.Menu.Count()
	r.Menu = hotel.Menu
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(hotels []model.Hotel) {
	r.TotalData = len(hotels)

	r.Hotels = make([]HotelResponse, len(hotels))
	for i, hotel := range hotels {
		r.Hotels[i].FromModel(hotel)
	}
}
