package dto

// ZeitfensterInput carries the ordering-window form fields. Von and Bis are
// HH:MM clock values.
type ZeitfensterInput struct {
	Von  string `json:"von" form:"von" validate:"required,uhrzeit"`
	Bis  string `json:"bis" form:"bis" validate:"required,uhrzeit"`
	Name string `json:"name" form:"name" validate:"omitempty,no_xss"`
}

// LoginInput carries the admin login form fields.
type LoginInput struct {
	Benutzername string `json:"benutzername" form:"benutzername" validate:"required"`
	Passwort     string `json:"passwort" form:"passwort" validate:"required"`
}
