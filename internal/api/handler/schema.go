package handler

import (
	"strings"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *loginRequest) normalize() { r.Email = strings.TrimSpace(r.Email) }

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *registerRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

type updateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}

type listItemsRequest struct {
	Search    string `query:"q"`
	Category  string `query:"category"  validate:"omitempty,oneof=all knife watch"`
	Condition string `query:"condition" validate:"omitempty,oneof=all new like-new good fair"`
	Sort      string `query:"sort"      validate:"omitempty,oneof=newest price-low price-high"`
	Page      int    `query:"page"      validate:"omitempty,min=1"`
}

type createItemRequest struct {
	Title       string            `json:"title"       validate:"required"`
	Description string            `json:"description" validate:"required"`
	Price       float64           `json:"price"       validate:"gt=0"`
	Category    string            `json:"category"    validate:"required,oneof=knife watch"`
	Condition   string            `json:"condition"   validate:"required,oneof=new like-new good fair"`
	Brand       string            `json:"brand"       validate:"required"`
	Images      []string          `json:"images"      validate:"min=1,max=5,dive,required"`
	Specs       map[string]string `json:"specs"`
}

func (r *createItemRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Brand = strings.TrimSpace(r.Brand)
}

type addReviewRequest struct {
	Rating  int    `json:"rating"  validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (r *addReviewRequest) normalize() { r.Comment = strings.TrimSpace(r.Comment) }

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,itemstatus"`
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content"    validate:"required"`
}

func (r *sendMessageRequest) normalize() { r.Content = strings.TrimSpace(r.Content) }

// --- Response types ---

type sessionResponse struct {
	User *domain.User `json:"user"`
}

type inboxResponse struct {
	Conversations []ports.InboxEntry `json:"conversations"`
	Unread        int                `json:"unread"`
}

type threadResponse struct {
	User         domain.User          `json:"user"`
	Conversation *domain.Conversation `json:"conversation,omitempty"`
	Messages     []domain.Message     `json:"messages"`
}

type sendMessageResponse struct {
	Message      domain.Message      `json:"message"`
	Conversation domain.Conversation `json:"conversation"`
}
