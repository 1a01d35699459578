package domain

import "errors"

var ErrSnapshotNotFound = errors.New("snapshot not found")

// State is the whole application state tree. It is treated as an immutable
// value: mutations build a new State from a Clone.
type State struct {
	CurrentUser   *User          `json:"currentUser"`
	Users         []User         `json:"users"`
	Items         []Item         `json:"items"`
	Reviews       []Review       `json:"reviews"`
	Messages      []Message      `json:"messages"`
	Conversations []Conversation `json:"conversations"`
}

// Clone returns a deep copy sharing no memory with s.
func (s State) Clone() State {
	out := State{
		Users:         append([]User(nil), s.Users...),
		Reviews:       append([]Review(nil), s.Reviews...),
		Messages:      append([]Message(nil), s.Messages...),
		Items:         make([]Item, len(s.Items)),
		Conversations: make([]Conversation, len(s.Conversations)),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	for i, it := range s.Items {
		out.Items[i] = it.Clone()
	}
	for i, c := range s.Conversations {
		out.Conversations[i] = c.Clone()
	}
	return out
}

// UserByEmail returns the user with exactly this email.
func (s State) UserByEmail(email string) (User, bool) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// UserByID returns the user with the given id.
func (s State) UserByID(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// ItemByID returns the item with the given id.
func (s State) ItemByID(id string) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ConversationBetween returns the conversation whose participants are a and b.
func (s State) ConversationBetween(a, b string) (Conversation, bool) {
	for _, c := range s.Conversations {
		if c.Involves(a, b) {
			return c, true
		}
	}
	return Conversation{}, false
}
