package domain

import "errors"

var ErrAlreadyReviewed = errors.New("item already reviewed by this user")

// Review is a rating left on an item. Username and Avatar are the reviewer's
// identity at submission time.
type Review struct {
	ID        string `json:"id"`
	ItemID    string `json:"itemId"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}
