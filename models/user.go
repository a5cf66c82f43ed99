package models

import "time"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Preferences struct {
	Newsletter    bool   `json:"newsletter"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

type BusinessInfo struct {
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	TaxID        string `json:"taxId"`
	Website      string `json:"website"`
}

type User struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Password        string        `json:"-"` // bcrypt hash, never serialized
	Role            string        `json:"role"`
	Avatar          string        `json:"avatar"`
	Phone           string        `json:"phone"`
	Address         Address       `json:"address"`
	IsActive        bool          `json:"isActive"`
	IsEmailVerified bool          `json:"isEmailVerified"`
	Preferences     Preferences   `json:"preferences"`
	BusinessInfo    *BusinessInfo `json:"businessInfo,omitempty"`
	Cart            []CartItem    `json:"cart"`
	CreatedAt       time.Time     `json:"createdAt"`
	LastLogin       *time.Time    `json:"lastLogin"`
}
