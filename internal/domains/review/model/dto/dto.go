package dto

import (
	"strconv"

	"saapadu/internal/domains/review/model"
	"saapadu/shared/constant"
	gModel "saapadu/shared/model"
	"saapadu/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	HotelID      int    `json:"hotelId"      validate:"required,gt=0"`
	CustomerName string `json:"customerName" validate:"required,max=100"`
	Rating       int    `json:"rating"       validate:"required,min=1,max=5"`
	Comment      string `json:"comment"      validate:"omitempty,max=2000"`
}

func (c *CreateReviewRequest) ToModel(hotelName string) model.Review {
	return model.Review{
		ID:           gModel.NewID(uuid.NewString()),
		HotelID:      gModel.NewNumericID(int64(c.HotelID)),
		HotelName:    hotelName,
		CustomerName: c.CustomerName,
		Rating:       gModel.Number(c.Rating),
		Comment:      c.Comment,
		Date:         gModel.NewTimestamp(timezone.Now()),
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// ApplyTo reports whether the review changed.
func (u *UpdateReviewRequest) ApplyTo(review *model.Review) bool {
	changed := false

	if u.Rating != nil && review.Rating != gModel.Number(*u.Rating) {
		review.Rating = gModel.Number(*u.Rating)
		changed = true
	}

	if u.Comment != nil && review.Comment != *u.Comment {
		review.Comment = *u.Comment
		changed = true
	}

	return changed
}

// ReviewFilter narrows reviews. Zero fields match everything and set fields must all match.
type ReviewFilter struct {
	HotelID int `json:"hotelId" validate:"omitempty,gt=0"`
	Rating  int `json:"rating"  validate:"omitempty,min=1,max=5"`
}

func (f ReviewFilter) Match(review model.Review) bool {
	if f.HotelID != 0 && review.HotelID.String() != strconv.Itoa(f.HotelID) {
		return false
	}

	if f.Rating != 0 && review.Rating.Float() != float64(f.Rating) {
		return false
	}

	return true
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	HotelID      string  `json:"hotelId"`
	HotelName    string  `json:"hotelName"`
	CustomerName string  `json:"customerName"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	Excerpt      string  `json:"excerpt"`
	Date         string  `json:"date"`
}

func (r *ReviewResponse) FromModel(review model.Review) {
	r.ID = review.ID.String()
	if r.ID == constant.Empty {
		r.ID = constant.NotAvailable
	}

	r.HotelID = review.HotelID.String()
	r.HotelName = review.HotelName
	r.CustomerName = review.CustomerName
	r.Rating = review.Rating.Float()
	r.Comment = review.Comment
	r.Excerpt = review.Excerpt()
	r.Date = review.Date.Date()
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(reviews []model.Review) {
	r.TotalData = len(reviews)

	r.Reviews = make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		r.Reviews[i].FromModel(review)
	}
}
