package domain

import (
	"github.com/google/wire"

	"github.com/HinduAI/Nara/internal/domain/chat"
	"github.com/HinduAI/Nara/internal/domain/conversation"
	"github.com/HinduAI/Nara/internal/domain/user"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// User domain
	user.NewService,

	// Conversation domain
	conversation.NewService,

	// Chat orchestration
	chat.NewService,
)
