package entity

import (
	"time"
)

type UserLocation struct {
	City    string `json:"city,omitempty" firestore:"city,omitempty"`
	State   string `json:"state,omitempty" firestore:"state,omitempty"`
	Country string `json:"country,omitempty" firestore:"country,omitempty"`
}

type UserRating struct {
	Average float64 `json:"average" firestore:"average"`
	Count   int     `json:"count" firestore:"count"`
}

type NotificationPrefs struct {
	Email bool `json:"email" firestore:"email"`
	Push  bool `json:"push" firestore:"push"`
}

type PrivacyPrefs struct {
	ShowLocation bool `json:"show_location" firestore:"showLocation"`
	ShowPhone    bool `json:"show_phone" firestore:"showPhone"`
}

type UserPreferences struct {
	Notifications NotificationPrefs `json:"notifications" firestore:"notifications"`
	Privacy       PrivacyPrefs      `json:"privacy" firestore:"privacy"`
}

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	Username  string `json:"username" firestore:"username"`
	FirstName string `json:"first_name,omitempty" firestore:"firstName,omitempty"`
	LastName  string `json:"last_name,omitempty" firestore:"lastName,omitempty"`
	Avatar    string `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role      string `json:"role" firestore:"role"`
	Status    string `json:"status" firestore:"status"`

	Location UserLocation `json:"location,omitempty" firestore:"location,omitempty"`
	Rating   UserRating   `json:"rating" firestore:"rating"`

	ItemsGiven    int `json:"items_given" firestore:"itemsGiven"`
	ItemsReceived int `json:"items_received" firestore:"itemsReceived"`

	Preferences UserPreferences `json:"preferences" firestore:"preferences"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserSummary is the public identity slice attached to items, requests and
// messages when the full profile is not needed.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}
