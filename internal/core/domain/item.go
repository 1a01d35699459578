package domain

import "errors"

// ItemStatus represents the moderation state of a listing.
type ItemStatus string

const (
	StatusPending  ItemStatus = "pending"
	StatusApproved ItemStatus = "approved"
	StatusRejected ItemStatus = "rejected"
)

// ItemCategory is the kind of goods a listing offers.
type ItemCategory string

const (
	CategoryKnife ItemCategory = "knife"
	CategoryWatch ItemCategory = "watch"
)

// ItemCondition describes the wear of a listed item.
type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionLikeNew ItemCondition = "like-new"
	ConditionGood    ItemCondition = "good"
	ConditionFair    ItemCondition = "fair"
)

var ErrItemNotFound = errors.New("item not found")

// Valid reports whether s is one of the known moderation states.
// Moderation does not restrict which state follows which.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Item is a listing. SellerName and SellerAvatar are frozen at submission time.
type Item struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Price        float64           `json:"price"`
	Category     ItemCategory      `json:"category"`
	Images       []string          `json:"images"`
	SellerID     string            `json:"sellerId"`
	SellerName   string            `json:"sellerName"`
	SellerAvatar string            `json:"sellerAvatar"`
	Condition    ItemCondition     `json:"condition"`
	Brand        string            `json:"brand"`
	Status       ItemStatus        `json:"status"`
	CreatedAt    string            `json:"createdAt"`
	Specs        map[string]string `json:"specs"`
}

// NewItem holds the seller-supplied part of a listing.
type NewItem struct {
	Title       string
	Description string
	Price       float64
	Category    ItemCategory
	Images      []string
	Condition   ItemCondition
	Brand       string
	Specs       map[string]string
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	i.Images = append([]string(nil), i.Images...)
	if i.Specs != nil {
		specs := make(map[string]string, len(i.Specs))
		for k, v := range i.Specs {
			specs[k] = v
		}
		i.Specs = specs
	}
	return i
}
