package model

import (
	"unicode/utf8"

	gModel "saapadu/shared/model"
)

const (
	EntityName = "review"

	// ExcerptLength is how much of a comment the review table shows.
	ExcerptLength = 50
)

type Review struct {
	ID           gModel.ID        `json:"id,omitzero"`
	HotelID      gModel.ID        `json:"hotelId,omitzero"`
	HotelName    string           `json:"hotelName"`
	CustomerName string           `json:"customerName"`
	Rating       gModel.Number    `json:"rating"`
	Comment      string           `json:"comment"`
	Date         gModel.Timestamp `json:"date,omitzero"`
	Extras       gModel.Extras    `json:"-"`
}

func (r *Review) UnmarshalJSON(data []byte) error {
	type alias Review

	var value alias

	extras, err := gModel.DecodeWithExtras(data, &value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*r = Review(value)
	r.Extras = extras

	return nil
}

func (r Review) MarshalJSON() ([]byte, error) {
	type alias Review

	return gModel.EncodeWithExtras(alias(r), r.Extras)
}

// Stars is the rating as a whole number of stars between 0 and 5.
func (r Review) Stars() int {
	return min(max(int(r.Rating.Float()), 0), 5)
}

// Excerpt is the first ExcerptLength characters of the comment followed by "...".
func (r Review) Excerpt() string {
	comment := r.Comment
	if utf8.RuneCountInString(comment) > ExcerptLength {
		comment = string([]rune(comment)[:ExcerptLength])
	}

	return comment + "..."
}

func IndexOf(reviews []Review, id string) int {
	for index, review := range reviews {
		if !review.ID.IsZero() && review.ID.String() == id {
			return index
		}
	}

	return -1
}
