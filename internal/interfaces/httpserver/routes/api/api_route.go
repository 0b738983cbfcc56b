// Package api registers the /api route group.
package api

import "github.com/gin-gonic/gin"

type APIRoute struct {
	chatRoute         *ChatRoute
	conversationRoute *ConversationRoute
}

func NewAPIRoute(chatRoute *ChatRoute, conversationRoute *ConversationRoute) *APIRoute {
	return &APIRoute{
		chatRoute:         chatRoute,
		conversationRoute: conversationRoute,
	}
}

func (route *APIRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/api")
	route.chatRoute.RegisterRouter(group)
	route.conversationRoute.RegisterRouter(group)
}
