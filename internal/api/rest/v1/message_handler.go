package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"

	"github.com/gin-gonic/gin"
)

// MessageHandler defines the interface for encrypting and decrypting messages
type MessageHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type messageHandler struct {
	messageService keys.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService keys.MessageService) MessageHandler {
	return &messageHandler{
		messageService: messageService,
	}
}

// Encrypt handles the POST request to encrypt a message with a stored keypair
// @Summary Encrypt a message
// @Description Encode the message in base 27 and raise it to the public exponent.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Keypair ID"
// @Param requestBody body MessageRequest true "Plaintext of letters and spaces"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *messageHandler) Encrypt(ctx *gin.Context) {
	handler.transform(ctx, handler.messageService.Encrypt)
}

// Decrypt handles the POST request to decrypt a message with a stored keypair
// @Summary Decrypt a message
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Keypair ID"
// @Param requestBody body MessageRequest true "Ciphertext of letters and spaces"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *messageHandler) Decrypt(ctx *gin.Context) {
	handler.transform(ctx, handler.messageService.Decrypt)
}

func (handler *messageHandler) transform(ctx *gin.Context, fn func(c context.Context, keyID, text string) (string, error)) {
	keyID := ctx.Param("id")

	var request MessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid message data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := fn(ctx, keyID, *request.Message)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFor(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{KeyID: keyID, Message: result})
}

// statusFor maps service errors onto HTTP status codes: unknown keypairs are
// 404, rejected kernel input is 400 and anything else is a server failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeypairNotFound):
		return http.StatusNotFound
	case errors.Is(err, textbook.ErrInvalidCharacter),
		errors.Is(err, textbook.ErrNumericOverflow),
		errors.Is(err, textbook.ErrDegenerateInput),
		errors.Is(err, textbook.ErrInvalidExponent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
