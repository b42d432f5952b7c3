package dto

import "github.com/aksecuretech/portal-go/models"

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name            string `json:"name"`
	CompanyName     string `json:"companyName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Address         string `json:"address"`
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

// ProfileInput carries the full profile form state. The backend replaces the
// stored profile wholesale, so unmodified fields are sent too.
type ProfileInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	CompanyName string          `json:"companyName"`
	Address     string          `json:"address"`
	Location    models.Location `json:"location"`
}
