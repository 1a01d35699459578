package handler

import (
	"strings"
	"testing"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want string
	}{
		{"required", &registerRequest{Email: "a@b.co", Password: "x"}, "username is required"},
		{"email", &registerRequest{Username: "a", Email: "nope", Password: "x"}, "email must be a valid email"},
		{"rating max", &addReviewRequest{Rating: 9, Comment: "x"}, "rating must be at most 5"},
		{"status oneof", &updateStatusRequest{Status: "archived"}, "status must be one of: pending approved rejected"},
		{"json name", &sendMessageRequest{Content: "hi"}, "receiverId is required"},
		{"query name", &listItemsRequest{Sort: "cheapest"}, "sort must be one of: newest price-low price-high"},
		{"images min", &createItemRequest{Title: "t", Description: "d", Price: 1, Category: "knife", Condition: "new", Brand: "b"}, "images must contain at least 1 entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}

	if err := v.Validate(&sendMessageRequest{ReceiverID: "user-2", Content: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
