package dto

import (
	"saapadu/internal/domains/user/model"
)

type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *UserResponse) FromModel(user model.RegisteredUser) {
	r.Name = user.Name
	r.Email = user.Email
	r.Phone = user.Phone
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(users []model.RegisteredUser) {
	r.TotalData = len(users)

	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}
