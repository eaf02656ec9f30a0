package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling keypair operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keypairGenerationService keys.KeypairGenerationService
	keypairMetadataService   keys.KeypairMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keypairGenerationService keys.KeypairGenerationService, keypairMetadataService keys.KeypairMetadataService) KeyHandler {
	return &keyHandler{
		keypairGenerationService: keypairGenerationService,
		keypairMetadataService:   keypairMetadataService,
	}
}

// GenerateKeys handles the POST request to generate and store a keypair
// @Summary Generate a textbook RSA keypair
// @Description Sample two primes, derive a keypair and store it. The exponent is optional.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest false "Public exponent"
// @Success 201 {object} KeypairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keypairMeta, err := handler.keypairGenerationService.Generate(ctx, request.Exponent)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error generating keypair: %v", err.Error())
		ctx.JSON(statusFor(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, NewKeypairResponse(keypairMeta))
}

// ListMetadata handles the GET request to list keypairs with optional query parameters
// @Summary List keypairs based on query parameters
// @Description Fetch stored keypairs filtered by creation date, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param createdAfter query string false "Lower bound of the creation date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by id, n, e or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeypairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeypairQuery()

	if createdAfter := ctx.Query("createdAfter"); len(createdAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, createdAfter)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid createdAfter: %v", err)})
			return
		}
		query.CreatedAfter = parsedTime
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		value, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid limit: %v", err)})
			return
		}
		query.Limit = value
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		value, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid offset: %v", err)})
			return
		}
		query.Offset = value
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keypairMetas, err := handler.keypairMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var listResponse = []KeypairResponse{}
	for _, keypairMeta := range keypairMetas {
		listResponse = append(listResponse, NewKeypairResponse(keypairMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve a keypair by ID
// @Summary Retrieve a keypair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Keypair ID"
// @Success 200 {object} KeypairResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keypairMeta, err := handler.keypairMetadataService.GetByID(ctx, keyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to get keypair with id %s: %v", keyID, err.Error())
		ctx.JSON(statusFor(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, NewKeypairResponse(keypairMeta))
}

// DeleteByID handles the DELETE request to delete a keypair by ID
// @Summary Delete a keypair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Keypair ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keypairMetadataService.DeleteByID(ctx, keyID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting keypair with id %s", keyID)
		ctx.JSON(statusFor(err), errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted keypair with id %s", keyID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
