package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/core/seed"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Store is the application state container. It owns the current State,
// writes a snapshot after every applied mutation and notifies subscribers.
type Store struct {
	mu       sync.RWMutex
	state    domain.State
	snapshot ports.SnapshotStore
	log      zerolog.Logger
	now      func() time.Time
	entropy  *ulid.MonotonicEntropy

	subsMu sync.Mutex
	subs   map[string]func(ports.Change)
}

var _ ports.Store = (*Store)(nil)

// NewStore loads the persisted snapshot once. When none exists, or it cannot
// be read, the store starts from the seed data.
func NewStore(ctx context.Context, snapshot ports.SnapshotStore, log zerolog.Logger) *Store {
	s := &Store{
		snapshot: snapshot,
		log:      log,
		now:      time.Now,
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		subs:     make(map[string]func(ports.Change)),
	}

	loaded, err := snapshot.Load(ctx)
	switch {
	case err == nil:
		s.state = loaded.Clone()
		s.log.Info().
			Int("users", len(s.state.Users)).
			Int("items", len(s.state.Items)).
			Msg("state restored from snapshot")
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.state = seed.State()
		s.log.Info().Msg("no snapshot found, starting from seed data")
	default:
		s.state = seed.State()
		s.log.Warn().Err(err).Msg("snapshot unreadable, starting from seed data")
	}

	return s
}

// State returns a copy of the current state.
func (s *Store) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// CurrentUser returns a copy of the signed-in user, or nil when signed out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

// Subscribe registers fn to be called after every applied mutation.
func (s *Store) Subscribe(fn func(ports.Change)) func() {
	id := uuid.NewString()

	s.subsMu.Lock()
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// Login signs in the user registered under email. The password is not checked.
func (s *Store) Login(ctx context.Context, email, _ string) bool {
	return s.apply(ctx, "login", func(st *domain.State) bool {
		u, ok := st.UserByEmail(email)
		if !ok {
			return false
		}
		st.CurrentUser = &u
		return true
	})
}

// Register creates a member and signs them in. It returns false when the email is taken.
func (s *Store) Register(ctx context.Context, username, email, _ string) bool {
	return s.apply(ctx, "register", func(st *domain.State) bool {
		if _, exists := st.UserByEmail(email); exists {
			return false
		}

		u := domain.User{
			ID:       s.newID("user"),
			Username: username,
			Email:    email,
			Avatar:   "/placeholder.svg?height=100&width=100&query=" + username + " avatar",
			JoinedAt: s.today(),
		}
		st.Users = append(st.Users, u)
		st.CurrentUser = &u
		return true
	})
}

// Logout signs the current user out.
func (s *Store) Logout(ctx context.Context) {
	s.apply(ctx, "logout", func(st *domain.State) bool {
		if st.CurrentUser == nil {
			return false
		}
		st.CurrentUser = nil
		return true
	})
}

// UpdateProfile merges update into the signed-in user and its users entry.
// An update that changes nothing is not applied.
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) {
	s.apply(ctx, "update_profile", func(st *domain.State) bool {
		if st.CurrentUser == nil {
			return false
		}
		merged := update.Apply(*st.CurrentUser)
		if merged == *st.CurrentUser {
			return false
		}
		st.CurrentUser = &merged
		for i := range st.Users {
			if st.Users[i].ID == merged.ID {
				st.Users[i] = update.Apply(st.Users[i])
			}
		}
		return true
	})
}

// AddItem submits a listing for moderation on behalf of the signed-in user
// and returns it. ok is false when nobody is signed in.
func (s *Store) AddItem(ctx context.Context, in domain.NewItem) (item domain.Item, ok bool) {
	ok = s.apply(ctx, "add_item", func(st *domain.State) bool {
		seller := st.CurrentUser
		if seller == nil {
			return false
		}

		item = domain.Item{
			ID:           s.newID("item"),
			Title:        in.Title,
			Description:  in.Description,
			Price:        in.Price,
			Category:     in.Category,
			Images:       in.Images,
			SellerID:     seller.ID,
			SellerName:   seller.Username,
			SellerAvatar: seller.Avatar,
			Condition:    in.Condition,
			Brand:        in.Brand,
			Status:       domain.StatusPending,
			CreatedAt:    s.today(),
			Specs:        in.Specs,
		}
		st.Items = append(st.Items, item)
		item = item.Clone()
		return true
	})
	if !ok {
		return domain.Item{}, false
	}
	return item, true
}

// UpdateItemStatus sets the moderation status of an item. Any known status
// may follow any other; unknown statuses are ignored. It returns the item as
// stored afterwards, with found false for an unknown ID, and reports whether
// the status actually changed.
func (s *Store) UpdateItemStatus(ctx context.Context, itemID string, status domain.ItemStatus) (item domain.Item, found, changed bool) {
	if !status.Valid() {
		s.log.Debug().Str("item_id", itemID).Str("status", string(status)).Msg("ignoring unknown item status")
		return domain.Item{}, false, false
	}
	changed = s.apply(ctx, "update_item_status", func(st *domain.State) bool {
		for i := range st.Items {
			if st.Items[i].ID != itemID {
				continue
			}
			found = true
			if st.Items[i].Status == status {
				item = st.Items[i].Clone()
				return false
			}
			st.Items[i].Status = status
			item = st.Items[i].Clone()
			return true
		}
		return false
	})
	return item, found, changed
}

// AddReview records a review of itemID by the signed-in user and returns it.
// It does not check for an earlier review by the same user; see AddReviewOnce.
func (s *Store) AddReview(ctx context.Context, itemID string, rating int, comment string) (domain.Review, bool) {
	r, err := s.addReview(ctx, itemID, rating, comment, false)
	return r, err == nil
}

// AddReviewOnce is AddReview that refuses a second review of the same item by
// the same user. The check and the append happen under one lock.
func (s *Store) AddReviewOnce(ctx context.Context, itemID string, rating int, comment string) (domain.Review, error) {
	return s.addReview(ctx, itemID, rating, comment, true)
}

func (s *Store) addReview(ctx context.Context, itemID string, rating int, comment string, once bool) (domain.Review, error) {
	var (
		review domain.Review
		err    error
	)
	s.apply(ctx, "add_review", func(st *domain.State) bool {
		reviewer := st.CurrentUser
		if reviewer == nil {
			err = domain.ErrNotSignedIn
			return false
		}
		if _, ok := st.ItemByID(itemID); !ok {
			err = domain.ErrItemNotFound
			return false
		}
		if once && hasReviewed(*st, itemID, reviewer.ID) {
			err = domain.ErrAlreadyReviewed
			return false
		}

		review = domain.Review{
			ID:        s.newID("review"),
			ItemID:    itemID,
			UserID:    reviewer.ID,
			Username:  reviewer.Username,
			Avatar:    reviewer.Avatar,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: s.today(),
		}
		st.Reviews = append(st.Reviews, review)
		return true
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("add review %s: %w", itemID, err)
	}
	return review, nil
}

// HasReviewed reports whether userID already reviewed itemID.
func (s *Store) HasReviewed(itemID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasReviewed(s.state, itemID, userID)
}

func hasReviewed(st domain.State, itemID, userID string) bool {
	for _, r := range st.Reviews {
		if r.ItemID == itemID && r.UserID == userID {
			return true
		}
	}
	return false
}

// SendMessage sends content from the signed-in user to receiverID, creating
// the pair's conversation on first contact, and returns the stored message
// with the conversation as it stands afterwards. The receiver's unread
// counter is left as is. ok is false when the message was not sent.
func (s *Store) SendMessage(ctx context.Context, receiverID, content string) (msg domain.Message, conv domain.Conversation, ok bool) {
	ok = s.apply(ctx, "send_message", func(st *domain.State) bool {
		sender := st.CurrentUser
		if sender == nil || sender.ID == receiverID {
			return false
		}
		if _, found := st.UserByID(receiverID); !found {
			return false
		}

		msg = domain.Message{
			ID:         s.newID("msg"),
			SenderID:   sender.ID,
			ReceiverID: receiverID,
			Content:    content,
			CreatedAt:  s.now().UTC().Format(timestampLayout),
		}
		st.Messages = append(st.Messages, msg)

		for i := range st.Conversations {
			if st.Conversations[i].Involves(sender.ID, receiverID) {
				st.Conversations[i].LastMessage = content
				st.Conversations[i].LastMessageAt = msg.CreatedAt
				conv = st.Conversations[i].Clone()
				return true
			}
		}

		conv = domain.Conversation{
			ID:            s.newID("conv"),
			Participants:  []string{sender.ID, receiverID},
			LastMessage:   content,
			LastMessageAt: msg.CreatedAt,
		}
		st.Conversations = append(st.Conversations, conv.Clone())
		return true
	})
	if !ok {
		return domain.Message{}, domain.Conversation{}, false
	}
	return msg, conv, true
}

// MarkMessagesRead clears the unread counter of a conversation.
func (s *Store) MarkMessagesRead(ctx context.Context, conversationID string) {
	s.apply(ctx, "mark_messages_read", func(st *domain.State) bool {
		for i := range st.Conversations {
			if st.Conversations[i].ID != conversationID {
				continue
			}
			if st.Conversations[i].UnreadCount == 0 {
				return false
			}
			st.Conversations[i].UnreadCount = 0
			return true
		}
		return false
	})
}

// apply runs mutate on a copy of the state. When mutate reports a change the
// copy replaces the current state, is persisted and announced.
func (s *Store) apply(ctx context.Context, op string, mutate func(*domain.State) bool) bool {
	s.mu.Lock()
	next := s.state.Clone()
	if !mutate(&next) {
		s.mu.Unlock()
		s.log.Debug().Str("op", op).Msg("store operation had no effect")
		return false
	}
	s.state = next

	// A cancelled request must not lose the write.
	persisted := true
	if err := s.snapshot.Save(context.WithoutCancel(ctx), next); err != nil {
		persisted = false
		s.log.Error().Err(err).Str("op", op).Msg("failed to persist snapshot")
	}
	s.mu.Unlock()

	s.log.Debug().Str("op", op).Bool("persisted", persisted).Msg("store operation applied")
	s.notify(ports.Change{Op: op, At: s.now().UTC(), Persisted: persisted})
	return true
}

func (s *Store) notify(ch ports.Change) {
	s.subsMu.Lock()
	fns := make([]func(ports.Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(ch)
	}
}

// newID returns prefix-<ULID>. Callers hold s.mu, which also guards entropy.
func (s *Store) newID(prefix string) string {
	return prefix + "-" + ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

func (s *Store) today() string {
	return s.now().UTC().Format(dateLayout)
}
