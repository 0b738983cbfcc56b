package routes

import (
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/handlers"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/routes/api"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	// Handlers
	handlers.HandlerProvider,

	// Routes
	api.NewChatRoute,
	api.NewConversationRoute,
	api.NewAPIRoute,
)
