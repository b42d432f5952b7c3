package models

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type User struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"companyName"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRef decodes an owner reference that the backend serializes either as a
// bare id string or as an embedded user object, depending on population.
type UserRef struct {
	ID   string
	User *User
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.User = nil
		return nil
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	r.ID = u.ID
	r.User = &u
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}
