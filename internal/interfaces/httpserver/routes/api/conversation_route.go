package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HinduAI/Nara/internal/domain/user"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/handlers/conversationhandler"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/middlewares"
	conversationrequests "github.com/HinduAI/Nara/internal/interfaces/httpserver/requests/conversation"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/responses"
	conversationresponses "github.com/HinduAI/Nara/internal/interfaces/httpserver/responses/conversation"
	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

type ConversationRoute struct {
	handler *conversationhandler.ConversationHandler
}

func NewConversationRoute(handler *conversationhandler.ConversationHandler) *ConversationRoute {
	return &ConversationRoute{handler: handler}
}

func (route *ConversationRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/createnewconversation", route.createConversation)

	conversations := router.Group("/conversations")
	conversations.GET("", route.listConversations)
	conversations.GET("/:conversation_id/messages", route.listMessages)
	conversations.DELETE("/:conversation_id", route.deleteConversation)
	conversations.PUT("/:conversation_id/title", route.updateTitle)

	router.POST("/messages/:message_id/feedback", route.setFeedback)
}

func (route *ConversationRoute) createConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := identityOrAbort(reqCtx)
	if !ok {
		return
	}

	var req conversationrequests.CreateConversationRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body", "c8e2a6f0-1d9b-4357-8f4e-7a3c5b0d9e12")
		return
	}

	resp, err := route.handler.CreateConversation(ctx, identity, req)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}

func (route *ConversationRoute) listConversations(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := identityOrAbort(reqCtx)
	if !ok {
		return
	}

	resp, err := route.handler.ListConversations(ctx, identity)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}

func (route *ConversationRoute) listMessages(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := identityOrAbort(reqCtx)
	if !ok {
		return
	}

	conversationID, ok := uintParamOrAbort(reqCtx, "conversation_id")
	if !ok {
		return
	}

	resp, err := route.handler.ListMessages(ctx, identity, conversationID)
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, resp)
}

func (route *ConversationRoute) deleteConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := identityOrAbort(reqCtx)
	if !ok {
		return
	}

	conversationID, ok := uintParamOrAbort(reqCtx, "conversation_id")
	if !ok {
		return
	}

	if err := route.handler.DeleteConversation(ctx, identity, conversationID); err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, conversationresponses.StatusResponse{Status: "success"})
}

func (route *ConversationRoute) updateTitle(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := identityOrAbort(reqCtx)
	if !ok {
		return
	}

	conversationID, ok := uintParamOrAbort(reqCtx, "conversation_id")
	if !ok {
		return
	}

	var req conversationrequests.UpdateTitleRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"title is required", "9b3f7d1e-6c4a-4028-b8e5-2f0a9c6d1b74")
		return
	}

	if err := route.handler.UpdateTitle(ctx, identity, conversationID, req); err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, conversationresponses.StatusResponse{
		Status: "success",
		ID:     conversationID,
		Title:  req.Title,
	})
}

func (route *ConversationRoute) setFeedback(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	identity, ok := identityOrAbort(reqCtx)
	if !ok {
		return
	}

	messageID, ok := uintParamOrAbort(reqCtx, "message_id")
	if !ok {
		return
	}

	var req conversationrequests.FeedbackRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"response_liked is required", "e7c1b9a5-3f2d-46e8-90a4-8d6b0f3c2e51")
		return
	}

	if err := route.handler.SetFeedback(ctx, identity, messageID, req); err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, conversationresponses.StatusResponse{Status: "success"})
}

func identityOrAbort(reqCtx *gin.Context) (user.Identity, bool) {
	identity, ok := middlewares.IdentityFromContext(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized,
			"authentication required", "0d8e6c2a-4b7f-4913-a5d0-1c9f3e8b6a27")
	}
	return identity, ok
}

func uintParamOrAbort(reqCtx *gin.Context, name string) (uint, bool) {
	raw := reqCtx.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid "+name, "f4a8d2c6-9e1b-4075-b3f7-5c0d8a2e6b93")
		return 0, false
	}
	return uint(parsed), true
}
