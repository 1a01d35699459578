// Package seed supplies the fixture collections a fresh store starts from.
package seed

import "github.com/edge-marketplace/marketplace/internal/core/domain"

// State returns a newly allocated copy of the seed data with nobody signed in.
func State() domain.State {
	return domain.State{
		Users:         users(),
		Items:         items(),
		Reviews:       reviews(),
		Messages:      messages(),
		Conversations: conversations(),
	}
}

func users() []domain.User {
	return []domain.User{
		{
			ID:          "user-1",
			Username:    "BladeCollector",
			Email:       "blade@example.com",
			Avatar:      "/bearded-man-avatar.png",
			Bio:         "Passionate knife collector for over 15 years. Specializing in Japanese craftsmanship.",
			Location:    "Portland, OR",
			JoinedAt:    "2022-03-15",
			Rating:      4.9,
			ReviewCount: 47,
		},
		{
			ID:          "user-2",
			Username:    "TimeKeeper",
			Email:       "time@example.com",
			Avatar:      "/professional-woman-avatar.png",
			Bio:         "Watch enthusiast and certified horologist. Quality timepieces only.",
			Location:    "Geneva, Switzerland",
			JoinedAt:    "2021-08-22",
			Rating:      4.8,
			ReviewCount: 89,
		},
		{
			ID:          "user-3",
			Username:    "EdgeMaster",
			Email:       "edge@example.com",
			Avatar:      "/man-with-glasses-avatar.png",
			Bio:         "Custom knife maker and collector. Every blade tells a story.",
			Location:    "Tokyo, Japan",
			JoinedAt:    "2020-11-10",
			Rating:      5.0,
			ReviewCount: 124,
		},
		{
			ID:       "admin-1",
			Username: "Moderator",
			Email:    "mod@edge.com",
			Avatar:   "/admin-avatar-shield.jpg",
			Bio:      "Platform moderator ensuring quality and compliance.",
			Location: "San Francisco, CA",
			JoinedAt: "2020-01-01",
			Rating:   5.0,
			IsAdmin:  true,
		},
	}
}

func knifeSpecs(length, steel, handle, weight, lock string) map[string]string {
	return map[string]string{
		"Blade Length":    length,
		"Blade Steel":     steel,
		"Handle Material": handle,
		"Weight":          weight,
		"Lock Type":       lock,
	}
}

func watchSpecs(diameter, movement, water, reserve string) map[string]string {
	return map[string]string{
		"Case Diameter":    diameter,
		"Movement":         movement,
		"Water Resistance": water,
		"Crystal":          "Sapphire",
		"Power Reserve":    reserve,
	}
}

func items() []domain.Item {
	return []domain.Item{
		{
			ID:           "item-1",
			Title:        "Benchmade Bugout 535BK-2",
			Description:  "Lightweight everyday carry knife with CPM-S30V blade steel. Perfect for outdoor enthusiasts. Minimal signs of use, blade is factory sharp.",
			Price:        145,
			Category:     domain.CategoryKnife,
			Images:       []string{"/benchmade-bugout-folding-knife-black.jpg", "/folding-knife-blade-detail.jpg"},
			SellerID:     "user-1",
			SellerName:   "BladeCollector",
			SellerAvatar: "/bearded-man-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Benchmade",
			Status:       domain.StatusApproved,
			CreatedAt:    "2024-01-15",
			Specs:        knifeSpecs("3.24 inches", "CPM-S30V", "CF-Elite", "1.85 oz", "AXIS Lock"),
		},
		{
			ID:           "item-2",
			Title:        "Omega Seamaster Planet Ocean 600M",
			Description:  "Professional dive watch in excellent condition. Full box and papers included. Recently serviced by Omega certified technician.",
			Price:        4850,
			Category:     domain.CategoryWatch,
			Images:       []string{"/omega-seamaster-planet-ocean-dive-watch.jpg", "/luxury-watch-caseback-omega.jpg"},
			SellerID:     "user-2",
			SellerName:   "TimeKeeper",
			SellerAvatar: "/professional-woman-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Omega",
			Status:       domain.StatusApproved,
			CreatedAt:    "2024-01-10",
			Specs:        watchSpecs("43.5mm", "Co-Axial 8900", "600m", "60 hours"),
		},
		{
			ID:           "item-3",
			Title:        "Chris Reeve Sebenza 31 Large",
			Description:  "The legendary Sebenza 31. This is the large version with S45VN blade. Pristine condition, carried a handful of times.",
			Price:        425,
			Category:     domain.CategoryKnife,
			Images:       []string{"/chris-reeve-sebenza-folding-knife-titanium.jpg", "/premium-folding-knife-open-blade.jpg"},
			SellerID:     "user-3",
			SellerName:   "EdgeMaster",
			SellerAvatar: "/man-with-glasses-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Chris Reeve Knives",
			Status:       domain.StatusApproved,
			CreatedAt:    "2024-01-08",
			Specs:        knifeSpecs("3.625 inches", "S45VN", "Titanium", "4.7 oz", "Frame Lock"),
		},
		{
			ID:           "item-4",
			Title:        "Rolex Submariner Date 126610LN",
			Description:  "2023 model with remaining warranty. Worn sparingly, in mint condition. All original links, box, and papers.",
			Price:        12500,
			Category:     domain.CategoryWatch,
			Images:       []string{"/rolex-submariner-black-dial-steel-watch.jpg", "/rolex-watch-bracelet-clasp-detail.jpg"},
			SellerID:     "user-2",
			SellerName:   "TimeKeeper",
			SellerAvatar: "/professional-woman-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Rolex",
			Status:       domain.StatusApproved,
			CreatedAt:    "2024-01-05",
			Specs:        watchSpecs("41mm", "Caliber 3235", "300m", "70 hours"),
		},
		{
			ID:           "item-5",
			Title:        "Spyderco Para Military 2",
			Description:  "Classic EDC knife in S45VN. Well broken in action, smooth as butter. Some light scratches on the clip.",
			Price:        125,
			Category:     domain.CategoryKnife,
			Images:       []string{"/spyderco-paramilitary-2-folding-knife.jpg", "/tactical-folding-knife-blade.jpg"},
			SellerID:     "user-1",
			SellerName:   "BladeCollector",
			SellerAvatar: "/bearded-man-avatar.png",
			Condition:    domain.ConditionGood,
			Brand:        "Spyderco",
			Status:       domain.StatusApproved,
			CreatedAt:    "2024-01-03",
			Specs:        knifeSpecs("3.42 inches", "S45VN", "G-10", "3.75 oz", "Compression Lock"),
		},
		{
			ID:           "item-6",
			Title:        "Tudor Black Bay 58",
			Description:  "Beautiful vintage-inspired diver. Blue dial version. Excellent condition with Tudor fabric strap.",
			Price:        3200,
			Category:     domain.CategoryWatch,
			Images:       []string{"/tudor-black-bay-58-blue-dial-watch.jpg", "/dive-watch-nato-strap-detail.jpg"},
			SellerID:     "user-3",
			SellerName:   "EdgeMaster",
			SellerAvatar: "/man-with-glasses-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Tudor",
			Status:       domain.StatusApproved,
			CreatedAt:    "2024-01-01",
			Specs:        watchSpecs("39mm", "MT5402", "200m", "70 hours"),
		},
		{
			ID:           "item-7",
			Title:        "Microtech Ultratech",
			Description:  "OTF automatic knife. Like new in box. Fires hard with no blade play.",
			Price:        280,
			Category:     domain.CategoryKnife,
			Images:       []string{"/microtech-ultratech-otf-automatic-knife.jpg"},
			SellerID:     "user-1",
			SellerName:   "BladeCollector",
			SellerAvatar: "/bearded-man-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Microtech",
			Status:       domain.StatusPending,
			CreatedAt:    "2024-01-20",
			Specs:        knifeSpecs("3.35 inches", "M390", "Aluminum", "3.4 oz", "OTF Slide Lock"),
		},
		{
			ID:           "item-8",
			Title:        "Grand Seiko SBGA413 Spring Drive",
			Description:  "Stunning snowflake dial. Full kit with warranty card dated 2023.",
			Price:        5800,
			Category:     domain.CategoryWatch,
			Images:       []string{"/grand-seiko-spring-drive-snowflake-dial-watch.jpg"},
			SellerID:     "user-2",
			SellerName:   "TimeKeeper",
			SellerAvatar: "/professional-woman-avatar.png",
			Condition:    domain.ConditionLikeNew,
			Brand:        "Grand Seiko",
			Status:       domain.StatusPending,
			CreatedAt:    "2024-01-18",
			Specs:        watchSpecs("40mm", "9R65 Spring Drive", "100m", "72 hours"),
		},
	}
}

func reviews() []domain.Review {
	return []domain.Review{
		{
			ID:        "review-1",
			ItemID:    "item-1",
			UserID:    "user-2",
			Username:  "TimeKeeper",
			Avatar:    "/professional-woman-avatar.png",
			Rating:    5,
			Comment:   "Knife arrived exactly as described. Great seller with fast shipping!",
			CreatedAt: "2024-01-18",
		},
		{
			ID:        "review-2",
			ItemID:    "item-2",
			UserID:    "user-1",
			Username:  "BladeCollector",
			Avatar:    "/bearded-man-avatar.png",
			Rating:    5,
			Comment:   "Absolutely stunning timepiece. Perfect condition and authentic.",
			CreatedAt: "2024-01-14",
		},
		{
			ID:        "review-3",
			ItemID:    "item-3",
			UserID:    "user-2",
			Username:  "TimeKeeper",
			Avatar:    "/professional-woman-avatar.png",
			Rating:    4,
			Comment:   "Beautiful Sebenza. Minor delay in shipping but item was perfect.",
			CreatedAt: "2024-01-12",
		},
	}
}

func msg(id, from, to, content, at string, read bool) domain.Message {
	return domain.Message{ID: id, SenderID: from, ReceiverID: to, Content: content, CreatedAt: at, Read: read}
}

func messages() []domain.Message {
	return []domain.Message{
		msg("msg-1", "user-1", "user-2", "Hi! Is the Omega still available?", "2024-01-20T10:30:00", true),
		msg("msg-2", "user-2", "user-1", "Yes it is! Would you like more photos?", "2024-01-20T10:35:00", true),
		msg("msg-3", "user-1", "user-2", "That would be great, especially of the caseback and clasp.", "2024-01-20T10:40:00", true),
		msg("msg-4", "user-2", "user-1", "I'll send those over shortly. The watch has been serviced recently.", "2024-01-20T10:45:00", true),
		msg("msg-5", "user-1", "user-2", "Perfect! Does it come with box and papers?", "2024-01-20T11:00:00", true),
		msg("msg-6", "user-2", "user-1", "Yes, full set! Original box, warranty card, service papers, and all original links.", "2024-01-20T11:05:00", true),
		msg("msg-7", "user-1", "user-2", "Excellent! I'm very interested. Can we discuss payment and shipping?", "2024-01-20T11:15:00", false),
		msg("msg-8", "user-3", "user-1", "Hey, saw your Benchmade listing. Still available?", "2024-01-21T09:00:00", true),
		msg("msg-9", "user-1", "user-3", "Hi! Yes, it's still available. Interested?", "2024-01-21T09:15:00", true),
		msg("msg-10", "user-3", "user-1", "Definitely! Can you tell me more about the condition? Any blade play or lock stick?", "2024-01-21T09:20:00", true),
		msg("msg-11", "user-1", "user-3", "No blade play at all, locks up solid. Action is smooth and drop-shut. Factory edge, never sharpened.", "2024-01-21T09:25:00", true),
		msg("msg-12", "user-3", "user-1", "Sounds perfect! Would you consider $130?", "2024-01-21T09:30:00", false),
	}
}

func conversations() []domain.Conversation {
	return []domain.Conversation{
		{
			ID:            "conv-1",
			Participants:  []string{"user-1", "user-2"},
			LastMessage:   "Excellent! I'm very interested. Can we discuss payment and shipping?",
			LastMessageAt: "2024-01-20T11:15:00",
			UnreadCount:   1,
		},
		{
			ID:            "conv-2",
			Participants:  []string{"user-1", "user-3"},
			LastMessage:   "Sounds perfect! Would you consider $130?",
			LastMessageAt: "2024-01-21T09:30:00",
			UnreadCount:   1,
		},
	}
}
