package ports

import (
	"context"
	"time"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// Change describes a mutation that was applied to the store. Persisted is
// false when the snapshot could not be written.
type Change struct {
	Op        string    `json:"op"`
	At        time.Time `json:"at"`
	Persisted bool      `json:"persisted"`
}

// Store is the full contract the presentation layer consumes. Rejected calls
// return false and invalid ones are no-ops. Operations that create an entity
// return it as stored, so callers never read it back from State.
type Store interface {
	State() domain.State
	CurrentUser() *domain.User
	Subscribe(fn func(Change)) (unsubscribe func())

	Login(ctx context.Context, email, password string) bool
	Register(ctx context.Context, username, email, password string) bool
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate)

	AddItem(ctx context.Context, item domain.NewItem) (domain.Item, bool)
	UpdateItemStatus(ctx context.Context, itemID string, status domain.ItemStatus) (item domain.Item, found, changed bool)

	AddReview(ctx context.Context, itemID string, rating int, comment string) (domain.Review, bool)
	// AddReviewOnce fails with domain.ErrAlreadyReviewed when the signed-in
	// user already reviewed itemID.
	AddReviewOnce(ctx context.Context, itemID string, rating int, comment string) (domain.Review, error)
	HasReviewed(itemID, userID string) bool

	SendMessage(ctx context.Context, receiverID, content string) (domain.Message, domain.Conversation, bool)
	MarkMessagesRead(ctx context.Context, conversationID string)
}
