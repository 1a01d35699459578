package handler

import "github.com/edge-marketplace/marketplace/internal/core/domain"

// --- Request → store input ---

func toNewItem(req createItemRequest) domain.NewItem {
	return domain.NewItem{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.ItemCategory(req.Category),
		Images:      req.Images,
		Condition:   domain.ItemCondition(req.Condition),
		Brand:       req.Brand,
		Specs:       req.Specs,
	}
}

func toProfileUpdate(req updateProfileRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Location: req.Location,
	}
}
