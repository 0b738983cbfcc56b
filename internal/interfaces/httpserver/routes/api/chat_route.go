package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HinduAI/Nara/internal/interfaces/httpserver/handlers/chathandler"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/middlewares"
	chatrequests "github.com/HinduAI/Nara/internal/interfaces/httpserver/requests/chat"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/responses"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

type ChatRoute struct {
	handler *chathandler.ChatHandler
}

func NewChatRoute(handler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{handler: handler}
}

func (route *ChatRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/ask", route.ask)
}

func (route *ChatRoute) ask(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := middlewares.IdentityFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "a2f7e1c9-8d4b-4630-b5a1-9e0c3f6d2b87")
		return
	}

	var req chatrequests.AskRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"question is required", "5c1d9f3b-2e7a-4804-a6c8-0b4f8e2d7a19")
		return
	}

	resp, err := route.handler.Ask(ctx, identity, req)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}
