package dto

import (
	"adboard/internal/domain/user"
)

// CreateUserRequest is the payload for registering a user. Username and
// password are the required keys; they are pointers so a missing key is
// distinguishable from an empty value.
type CreateUserRequest struct {
	Username  *string   `json:"username"`
	Password  *string   `json:"password"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      user.Role `json:"role"`
	Age       int       `json:"age"`
	Locations []string  `json:"locations"`
}

func (r CreateUserRequest) MissingKeys() []string {
	var missing []string
	if r.Username == nil {
		missing = append(missing, "username")
	}
	if r.Password == nil {
		missing = append(missing, "password")
	}
	return missing
}

func (r CreateUserRequest) ToEntity() *user.User {
	u := user.New(*r.Username, *r.Password)
	u.FirstName = r.FirstName
	u.LastName = r.LastName
	if r.Role != "" {
		u.Role = r.Role
	}
	u.Age = r.Age
	u.AddLocations(r.Locations)
	return u
}

// PatchUserRequest is the payload for a partial user update. Absent and
// falsy values leave the stored field untouched; locations are unioned
// into the existing set.
type PatchUserRequest struct {
	Username  *string    `json:"username"`
	Password  *string    `json:"password"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Role      *user.Role `json:"role"`
	Age       *int       `json:"age"`
	Locations []string   `json:"locations"`
}

func (r PatchUserRequest) ApplyTo(u *user.User) {
	if r.Username != nil && *r.Username != "" {
		u.Username = *r.Username
	}
	if r.Password != nil && *r.Password != "" {
		u.Password = *r.Password
	}
	if r.FirstName != nil && *r.FirstName != "" {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil && *r.LastName != "" {
		u.LastName = *r.LastName
	}
	if r.Role != nil && *r.Role != "" {
		u.Role = *r.Role
	}
	if r.Age != nil && *r.Age != 0 {
		u.Age = *r.Age
	}
	u.AddLocations(r.Locations)
}

// UserResponse is the user projection returned by the API. It never
// carries password material.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      user.Role `json:"role"`
	Age       int       `json:"age"`
	Locations []string  `json:"locations"`
	TotalAds  int64     `json:"total_ads"`
}

func FromUser(u *user.User) UserResponse {
	locations := u.Locations
	if locations == nil {
		locations = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Age:       u.Age,
		Locations: locations,
		TotalAds:  u.TotalAds,
	}
}
