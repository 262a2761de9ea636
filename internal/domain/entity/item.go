package entity

import (
	"math"
	"time"
)

const (
	ItemStatusAvailable = "Available"
	ItemStatusReserved  = "Reserved"
	ItemStatusGivenAway = "Given Away"
	ItemStatusSold      = "Sold"
)

const (
	SharingTypeGiveAway = "Give Away"
	SharingTypeSell     = "Sell"
	SharingTypeKeep     = "Keep Until Needed"
)

// DefaultItemLifetime is how long a listing stays up before it expires.
const DefaultItemLifetime = 90 * 24 * time.Hour

var ItemCategories = []string{
	"Electronics", "Clothing", "Books", "Furniture", "Toys",
	"Sports", "Kitchen", "Tools", "Art", "Music",
	"Health", "Beauty", "Automotive", "Garden", "Other",
}

var ItemConditions = []string{"New", "Like New", "Good", "Fair", "Poor"}

// itemStatusTransitions is the listing lifecycle. Given Away and Sold are
// terminal; Reserved may fall back to Available when a deal falls through.
var itemStatusTransitions = map[string][]string{
	ItemStatusAvailable: {ItemStatusReserved, ItemStatusGivenAway, ItemStatusSold},
	ItemStatusReserved:  {ItemStatusAvailable, ItemStatusGivenAway, ItemStatusSold},
	ItemStatusGivenAway: {},
	ItemStatusSold:      {},
}

type ItemLocation struct {
	City    string `json:"city,omitempty" firestore:"city,omitempty"`
	State   string `json:"state,omitempty" firestore:"state,omitempty"`
	Country string `json:"country,omitempty" firestore:"country,omitempty"`
}

type ItemDimensions struct {
	Length float64 `json:"length,omitempty" firestore:"length,omitempty"`
	Width  float64 `json:"width,omitempty" firestore:"width,omitempty"`
	Height float64 `json:"height,omitempty" firestore:"height,omitempty"`
	Weight float64 `json:"weight,omitempty" firestore:"weight,omitempty"`
}

type PickupOptions struct {
	HomePickup     bool `json:"home_pickup" firestore:"homePickup"`
	PublicLocation bool `json:"public_location" firestore:"publicLocation"`
	Shipping       bool `json:"shipping" firestore:"shipping"`
}

type TimeSlot struct {
	Day       string `json:"day" firestore:"day"`
	StartTime string `json:"start_time" firestore:"startTime"`
	EndTime   string `json:"end_time" firestore:"endTime"`
}

type ItemAvailability struct {
	StartDate *time.Time `json:"start_date,omitempty" firestore:"startDate,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty" firestore:"endDate,omitempty"`
	TimeSlots []TimeSlot `json:"time_slots,omitempty" firestore:"timeSlots,omitempty"`
}

type CharityInfo struct {
	Organization string  `json:"organization,omitempty" firestore:"organization,omitempty"`
	Percentage   float64 `json:"percentage" firestore:"percentage"`
}

// Interest is one entry in an item's interested-user list. The list keeps a
// single entry per user, most recently updated first.
type Interest struct {
	UserID  string    `json:"user_id" firestore:"userId"`
	Message string    `json:"message" firestore:"message"`
	Date    time.Time `json:"date" firestore:"date"`
}

type Item struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"`
	Condition   string   `json:"condition" firestore:"condition"`
	Images      []string `json:"images" firestore:"images"`
	OwnerID     string   `json:"owner_id" firestore:"ownerId"`
	Status      string   `json:"status" firestore:"status"`
	SharingType string   `json:"sharing_type" firestore:"sharingType"`
	Price       float64  `json:"price" firestore:"price"`

	Location     ItemLocation     `json:"location,omitempty" firestore:"location,omitempty"`
	Tags         []string         `json:"tags,omitempty" firestore:"tags,omitempty"`
	Dimensions   ItemDimensions   `json:"dimensions,omitempty" firestore:"dimensions,omitempty"`
	Pickup       PickupOptions    `json:"pickup_options" firestore:"pickupOptions"`
	Availability ItemAvailability `json:"availability,omitempty" firestore:"availability,omitempty"`

	Views           int        `json:"views" firestore:"views"`
	Likes           []string   `json:"likes" firestore:"likes"`
	InterestedUsers []Interest `json:"interested_users" firestore:"interestedUsers"`

	IsDonation  bool        `json:"is_donation" firestore:"isDonation"`
	CharityInfo CharityInfo `json:"charity_info,omitempty" firestore:"charityInfo,omitempty"`
	Featured    bool        `json:"featured" firestore:"featured"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
	ExpiresAt time.Time `json:"expires_at" firestore:"expiresAt"`
}

// CanTransitionTo reports whether the listing status may move to next.
// Setting the same status again is always a no-op and allowed.
func (i *Item) CanTransitionTo(next string) bool {
	if next == i.Status {
		return true
	}
	for _, allowed := range itemStatusTransitions[i.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (i *Item) IsTerminalStatus() bool {
	return i.Status == ItemStatusGivenAway || i.Status == ItemStatusSold
}

func (i *Item) IsLikedBy(userID string) bool {
	for _, id := range i.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// DaysUntilExpiration returns the whole days left before the listing expires,
// never negative.
func (i *Item) DaysUntilExpiration() int {
	if i.ExpiresAt.IsZero() {
		return 0
	}
	days := int(math.Ceil(time.Until(i.ExpiresAt).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// ItemSummary is the listing slice attached to requests and threads.
type ItemSummary struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Images []string `json:"images"`
	Price  float64  `json:"price"`
	Status string   `json:"status"`
}

func (i *Item) Summary() *ItemSummary {
	return &ItemSummary{
		ID:     i.ID,
		Title:  i.Title,
		Images: i.Images,
		Price:  i.Price,
		Status: i.Status,
	}
}

func ValidItemCategory(category string) bool {
	for _, c := range ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidSharingType(sharingType string) bool {
	switch sharingType {
	case SharingTypeGiveAway, SharingTypeSell, SharingTypeKeep:
		return true
	}
	return false
}

func ValidItemCondition(condition string) bool {
	for _, c := range ItemConditions {
		if c == condition {
			return true
		}
	}
	return false
}
