package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
	"github.com/edge-marketplace/marketplace/internal/core/service"
)

// MessageHandler serves direct messaging between members.
type MessageHandler struct {
	store ports.Store
}

func NewMessageHandler(store ports.Store) *MessageHandler {
	return &MessageHandler{store: store}
}

// Inbox handles GET /v1/conversations.
//
// @Summary      Conversations of the signed-in member
// @Tags         messages
// @Produce      json
// @Success      200  {object}  inboxResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/conversations [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	st := h.store.State()
	return c.JSON(http.StatusOK, inboxResponse{
		Conversations: service.Inbox(st, u.ID),
		Unread:        service.UnreadTotal(st),
	})
}

// Thread handles GET /v1/conversations/with/:userId. Opening a thread marks
// its conversation read.
//
// @Summary      Messages exchanged with a member
// @Tags         messages
// @Produce      json
// @Param        userId  path      string  true  "Chat partner ID"
// @Success      200     {object}  threadResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /v1/conversations/with/{userId} [get]
func (h *MessageHandler) Thread(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	otherID := c.Param("userId")
	if otherID == u.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open a conversation with yourself")
	}

	st := h.store.State()
	other, ok := st.UserByID(otherID)
	if !ok {
		return fmt.Errorf("thread with %s: %w", otherID, domain.ErrUserNotFound)
	}

	resp := threadResponse{User: other}
	if conv, ok := st.ConversationBetween(u.ID, otherID); ok {
		h.store.MarkMessagesRead(c.Request().Context(), conv.ID)
		st = h.store.State()
		if conv, ok = st.ConversationBetween(u.ID, otherID); ok {
			resp.Conversation = &conv
		}
	}
	resp.Messages = service.Thread(st, u.ID, otherID)

	return c.JSON(http.StatusOK, resp)
}

// Send handles POST /v1/messages.
//
// @Summary      Send a direct message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  sendMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ReceiverID == u.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot message yourself")
	}
	if _, ok := h.store.State().UserByID(req.ReceiverID); !ok {
		return fmt.Errorf("send message to %s: %w", req.ReceiverID, domain.ErrUserNotFound)
	}

	msg, conv, ok := h.store.SendMessage(c.Request().Context(), req.ReceiverID, req.Content)
	if !ok {
		return fmt.Errorf("send message to %s: %w", req.ReceiverID, domain.ErrNotSignedIn)
	}

	return c.JSON(http.StatusCreated, sendMessageResponse{
		Message:      msg,
		Conversation: conv,
	})
}

// MarkRead handles POST /v1/conversations/:id/read.
//
// @Summary      Mark a conversation read
// @Tags         messages
// @Param        id   path  string  true  "Conversation ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/conversations/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	u, err := sessionUser(c)
	if err != nil {
		return err
	}

	convID := c.Param("id")
	for _, conv := range h.store.State().Conversations {
		if conv.ID == convID && conv.HasParticipant(u.ID) {
			h.store.MarkMessagesRead(c.Request().Context(), convID)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return fmt.Errorf("mark read %s: %w", convID, domain.ErrConversationNotFound)
}
