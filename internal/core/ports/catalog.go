package ports

import "github.com/edge-marketplace/marketplace/internal/core/domain"

// DefaultPageSize is the number of listings on one browse page.
const DefaultPageSize = 3

// Sort orders accepted by the browse listing.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// ListingQuery carries the browse page filters.
type ListingQuery struct {
	Search    string // case-insensitive match on title, brand or description
	Category  string // "" or "all" = any
	Condition string // "" or "all" = any
	Sort      string // newest (default), price-low, price-high
	Page      int    // 1-based
	PageSize  int    // defaults to DefaultPageSize
}

// ListingPage is one page of approved listings.
type ListingPage struct {
	Items      []domain.Item `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// ItemDetail is an item with its seller and reviews.
type ItemDetail struct {
	Item          domain.Item     `json:"item"`
	Seller        *domain.User    `json:"seller,omitempty"`
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
}

// StatusBuckets groups items by moderation status.
type StatusBuckets struct {
	Pending  []domain.Item `json:"pending"`
	Approved []domain.Item `json:"approved"`
	Rejected []domain.Item `json:"rejected"`
}

// ProfileStats summarises a member's activity as a seller.
type ProfileStats struct {
	TotalListings  int `json:"totalListings"`
	ActiveListings int `json:"activeListings"`
	Reviews        int `json:"reviews"`
}

// InboxEntry is a chat partner together with the shared conversation.
type InboxEntry struct {
	User         domain.User         `json:"user"`
	Conversation domain.Conversation `json:"conversation"`
}
