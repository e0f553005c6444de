package model

const EntityName = "user"

// RegisteredUser signed up through the storefront.
type RegisteredUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
