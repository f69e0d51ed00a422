package handlers

import (
	"net/http"

	"naukri-api/internal/services"
	"naukri-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MessageHandler holds dependencies for messaging operations.
type MessageHandler struct {
	service   services.MessageService
	validator *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageService, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{service: service, validator: validate}
}

// SendMessage godoc
// @Summary      Send a message
// @Description  A candidate and a recruiter may talk once an application between them is shortlisted and approved. Admins may message anyone.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message body      dto.SendMessageRequest true  "Sender, receiver and text"
// @Success      201 {object}  dto.MessageResponse "Message stored"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      403 {object}  map[string]string "Messaging not approved"
// @Failure      404 {object}  map[string]string "Sender or receiver not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	msg, err := h.service.Send(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, MapMessageModelToResponse(msg))
}

// ListMessages godoc
// @Summary      List a user's messages
// @Description  Messages the user sent or received, oldest first. peer_id narrows the list to one conversation.
// @Tags         messages
// @Produce      json
// @Param        user_id query string true  "User ID" Format(uuid)
// @Param        peer_id query string false "Other party" Format(uuid)
// @Success      200 {array}   dto.MessageResponse "Messages"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := requiredQueryID(c, "user_id")
	if !ok {
		return
	}
	peerID, ok := queryID(c, "peer_id")
	if !ok {
		return
	}

	msgs, err := h.service.ListForUser(c.Request.Context(), &dto.ListMessagesRequest{UserID: userID, PeerID: peerID})
	if err != nil {
		respondError(c, err, "Failed to retrieve messages")
		return
	}

	resp := make([]dto.MessageResponse, 0, len(msgs))
	for i := range msgs {
		resp = append(resp, MapMessageModelToResponse(&msgs[i]))
	}
	c.JSON(http.StatusOK, resp)
}
