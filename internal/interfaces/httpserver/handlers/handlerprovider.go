package handlers

import (
	"github.com/google/wire"

	"github.com/HinduAI/Nara/internal/interfaces/httpserver/handlers/chathandler"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/handlers/conversationhandler"
)

var HandlerProvider = wire.NewSet(
	chathandler.NewChatHandler,
	conversationhandler.NewConversationHandler,
)
