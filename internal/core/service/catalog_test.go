package service

import (
	"errors"
	"testing"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/core/seed"
)

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBrowse(t *testing.T) {
	st := seed.State()

	tests := []struct {
		name      string
		query     ports.ListingQuery
		wantIDs   []string
		wantTotal int
		wantPages int
	}{
		{
			name:      "default newest first, first page",
			query:     ports.ListingQuery{},
			wantIDs:   []string{"item-1", "item-2", "item-3"},
			wantTotal: 6,
			wantPages: 2,
		},
		{
			name:      "second page",
			query:     ports.ListingQuery{Page: 2},
			wantIDs:   []string{"item-4", "item-5", "item-6"},
			wantTotal: 6,
			wantPages: 2,
		},
		{
			name:      "page past the end is empty",
			query:     ports.ListingQuery{Page: 9},
			wantIDs:   []string{},
			wantTotal: 6,
			wantPages: 2,
		},
		{
			name:      "category filter with price ascending",
			query:     ports.ListingQuery{Category: "knife", Sort: ports.SortPriceLow, PageSize: 10},
			wantIDs:   []string{"item-5", "item-1", "item-3"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "price descending",
			query:     ports.ListingQuery{Category: "watch", Sort: ports.SortPriceHigh},
			wantIDs:   []string{"item-4", "item-2", "item-6"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "condition filter",
			query:     ports.ListingQuery{Condition: "good", Category: "all"},
			wantIDs:   []string{"item-5"},
			wantTotal: 1,
			wantPages: 1,
		},
		{
			name:      "search is case-insensitive over title, brand and description",
			query:     ports.ListingQuery{Search: "  DIVE "},
			wantIDs:   []string{"item-2", "item-6"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "pending items are never listed",
			query:     ports.ListingQuery{Search: "microtech"},
			wantIDs:   []string{},
			wantTotal: 0,
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Browse(st, tt.query)
			if got := ids(page.Items); !equalIDs(got, tt.wantIDs) {
				t.Fatalf("items = %v, want %v", got, tt.wantIDs)
			}
			if page.Total != tt.wantTotal || page.TotalPages != tt.wantPages {
				t.Fatalf("total=%d pages=%d, want %d/%d", page.Total, page.TotalPages, tt.wantTotal, tt.wantPages)
			}
		})
	}
}

func TestFeatured(t *testing.T) {
	st := seed.State()
	st.Items[0].Status = domain.StatusRejected

	got := ids(Featured(st, 3))
	if !equalIDs(got, []string{"item-2", "item-3", "item-4"}) {
		t.Fatalf("unexpected featured items %v", got)
	}
}

func TestItemDetail(t *testing.T) {
	st := seed.State()
	st.Reviews = append(st.Reviews, domain.Review{ID: "review-x", ItemID: "item-1", UserID: "user-3", Rating: 4})

	d, err := ItemDetail(st, "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Seller == nil || d.Seller.ID != "user-1" {
		t.Fatalf("seller not resolved: %+v", d.Seller)
	}
	if len(d.Reviews) != 2 || d.AverageRating != 4.5 {
		t.Fatalf("unexpected reviews %d avg %.2f", len(d.Reviews), d.AverageRating)
	}

	if _, err := ItemDetail(st, "item-404"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSellerListingsAndProfileStats(t *testing.T) {
	st := seed.State()

	b := SellerListings(st, "user-1")
	if !equalIDs(ids(b.Approved), []string{"item-1", "item-5"}) || !equalIDs(ids(b.Pending), []string{"item-7"}) || len(b.Rejected) != 0 {
		t.Fatalf("unexpected buckets: %+v", b)
	}

	stats := ProfileStats(st, "user-1")
	if stats != (ports.ProfileStats{TotalListings: 3, ActiveListings: 2, Reviews: 1}) {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestInboxAndThread(t *testing.T) {
	st := seed.State()

	inbox := Inbox(st, "user-1")
	if len(inbox) != 2 || inbox[0].User.ID != "user-3" || inbox[1].User.ID != "user-2" {
		t.Fatalf("unexpected inbox order: %+v", inbox)
	}
	if len(Inbox(st, "admin-1")) != 0 {
		t.Fatalf("moderator has no conversations")
	}

	thread := Thread(st, "user-2", "user-1")
	if len(thread) != 7 || thread[0].ID != "msg-1" || thread[6].ID != "msg-7" {
		t.Fatalf("unexpected thread: %d messages", len(thread))
	}
}

func TestUnreadTotal(t *testing.T) {
	if got := UnreadTotal(seed.State()); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
}
