package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

// Browse returns one page of approved listings matching q.
func Browse(st domain.State, q ports.ListingQuery) ports.ListingPage {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	matched := make([]domain.Item, 0, len(st.Items))
	for _, it := range st.Items {
		if it.Status != domain.StatusApproved {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Title), search) &&
			!strings.Contains(strings.ToLower(it.Brand), search) &&
			!strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		if !anyOrEqual(q.Category, string(it.Category)) || !anyOrEqual(q.Condition, string(it.Condition)) {
			continue
		}
		matched = append(matched, it.Clone())
	}

	switch q.Sort {
	case ports.SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case ports.SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return parseTimestamp(matched[i].CreatedAt).After(parseTimestamp(matched[j].CreatedAt))
		})
	}

	size := q.PageSize
	if size <= 0 {
		size = ports.DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	total := len(matched)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return ports.ListingPage{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}
}

// Featured returns the first n approved listings in stored order.
func Featured(st domain.State, n int) []domain.Item {
	out := make([]domain.Item, 0, n)
	for _, it := range st.Items {
		if len(out) == n {
			break
		}
		if it.Status == domain.StatusApproved {
			out = append(out, it.Clone())
		}
	}
	return out
}

// ItemDetail returns an item with its seller and reviews.
func ItemDetail(st domain.State, itemID string) (*ports.ItemDetail, error) {
	item, ok := st.ItemByID(itemID)
	if !ok {
		return nil, fmt.Errorf("item detail %s: %w", itemID, domain.ErrItemNotFound)
	}

	detail := &ports.ItemDetail{Item: item.Clone(), Reviews: ReviewsFor(st, itemID)}
	if seller, ok := st.UserByID(item.SellerID); ok {
		detail.Seller = &seller
	}
	if n := len(detail.Reviews); n > 0 {
		sum := 0
		for _, r := range detail.Reviews {
			sum += r.Rating
		}
		detail.AverageRating = float64(sum) / float64(n)
	}
	return detail, nil
}

// ReviewsFor returns the reviews left on itemID.
func ReviewsFor(st domain.State, itemID string) []domain.Review {
	out := make([]domain.Review, 0)
	for _, r := range st.Reviews {
		if r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out
}

// ModerationQueue groups every item by moderation status.
func ModerationQueue(st domain.State) ports.StatusBuckets {
	return bucket(st.Items, func(domain.Item) bool { return true })
}

// SellerListings groups the items of sellerID by moderation status.
func SellerListings(st domain.State, sellerID string) ports.StatusBuckets {
	return bucket(st.Items, func(it domain.Item) bool { return it.SellerID == sellerID })
}

// ProfileStats counts a member's listings and the reviews left on them.
func ProfileStats(st domain.State, userID string) ports.ProfileStats {
	var stats ports.ProfileStats
	owned := make(map[string]struct{})
	for _, it := range st.Items {
		if it.SellerID != userID {
			continue
		}
		owned[it.ID] = struct{}{}
		stats.TotalListings++
		if it.Status == domain.StatusApproved {
			stats.ActiveListings++
		}
	}
	for _, r := range st.Reviews {
		if _, ok := owned[r.ItemID]; ok {
			stats.Reviews++
		}
	}
	return stats
}

// UnreadTotal sums the unread counters of all conversations.
func UnreadTotal(st domain.State) int {
	total := 0
	for _, c := range st.Conversations {
		total += c.UnreadCount
	}
	return total
}

// Inbox lists the members userID shares a conversation with, most recent first.
func Inbox(st domain.State, userID string) []ports.InboxEntry {
	out := make([]ports.InboxEntry, 0)
	for _, c := range st.Conversations {
		if !c.HasParticipant(userID) {
			continue
		}
		other, ok := st.UserByID(c.Other(userID))
		if !ok {
			continue
		}
		out = append(out, ports.InboxEntry{User: other, Conversation: c.Clone()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseTimestamp(out[i].Conversation.LastMessageAt).After(parseTimestamp(out[j].Conversation.LastMessageAt))
	})
	return out
}

// Thread returns the messages exchanged between a and b, oldest first.
func Thread(st domain.State, a, b string) []domain.Message {
	out := make([]domain.Message, 0)
	for _, m := range st.Messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseTimestamp(out[i].CreatedAt).Before(parseTimestamp(out[j].CreatedAt))
	})
	return out
}

func bucket(items []domain.Item, keep func(domain.Item) bool) ports.StatusBuckets {
	b := ports.StatusBuckets{
		Pending:  make([]domain.Item, 0),
		Approved: make([]domain.Item, 0),
		Rejected: make([]domain.Item, 0),
	}
	for _, it := range items {
		if !keep(it) {
			continue
		}
		switch it.Status {
		case domain.StatusPending:
			b.Pending = append(b.Pending, it.Clone())
		case domain.StatusApproved:
			b.Approved = append(b.Approved, it.Clone())
		case domain.StatusRejected:
			b.Rejected = append(b.Rejected, it.Clone())
		}
	}
	return b
}

func anyOrEqual(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

// parseTimestamp accepts the date-only and date-time forms stored in the
// state. Unparseable values sort as the zero time.
func parseTimestamp(v string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", dateLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
