//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestKeypairMeta() *keys.KeypairMeta {
	return &keys.KeypairMeta{
		ID:              "abc-123",
		P:               61,
		Q:               53,
		N:               3233,
		Phi:             3120,
		E:               17,
		S:               2753,
		Rounds:          10,
		DateTimeCreated: time.Now(),
	}
}

func TestKeyHandler_GenerateKeys_Success(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockGenerationService.
		On("Generate", mock.Anything, uint64(17)).
		Return(newTestKeypairMeta(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"exponent": 17}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Contains(t, w.Body.String(), `"n":3233`)
	mockGenerationService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_EmptyBody(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockGenerationService.
		On("Generate", mock.Anything, uint64(0)).
		Return(newTestKeypairMeta(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(""))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockGenerationService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_InvalidExponent(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"exponent": 4}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGenerationService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestKeyHandler_GenerateKeys_ServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"exponent never coprime", fmt.Errorf("no coprime exponent: %w", textbook.ErrInvalidExponent), http.StatusBadRequest},
		{"store failure", errors.New("failed to store keypair: disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGenerationService := new(MockKeypairGenerationService)
			mockMetadataService := new(MockKeypairMetadataService)

			handler := NewKeyHandler(mockGenerationService, mockMetadataService)

			mockGenerationService.
				On("Generate", mock.Anything, uint64(65537)).
				Return(nil, tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"exponent": 65537}`))
			req.Header.Set("Content-Type", "application/json")

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.GenerateKeys(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestKeyHandler_ListMetadata_Success(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.
		On("List", mock.Anything, mock.MatchedBy(func(q *keys.KeypairQuery) bool {
			return q.Limit == 5 && q.SortBy == "n" && q.SortOrder == "desc"
		})).
		Return([]*keys.KeypairMeta{newTestKeypairMeta()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?limit=5&sortBy=n&sortOrder=desc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_ListMetadata_StoreError(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.On("List", mock.Anything, mock.Anything).
		Return([]*keys.KeypairMeta(nil), errors.New("database is locked"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database is locked")
}

func TestKeyHandler_ListMetadata_InvalidQuery(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"non-numeric limit", "/keys?limit=ten"},
		{"negative offset", "/keys?offset=-1"},
		{"unknown sort field", "/keys?sortBy=s"},
		{"bad sort order", "/keys?sortOrder=up"},
		{"bad timestamp", "/keys?createdAfter=yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMetadataService := new(MockKeypairMetadataService)
			handler := NewKeyHandler(new(MockKeypairGenerationService), mockMetadataService)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.url, nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.ListMetadata(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockMetadataService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestKeyHandler_GetMetadataByID_Success(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "abc-123").
		Return(newTestKeypairMeta(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"s":2753`)
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_GetMetadataByID_NotFound(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "missing").
		Return(nil, keys.ErrKeypairNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyHandler_GetMetadataByID_StoreError(t *testing.T) {
	mockGenerationService := new(MockKeypairGenerationService)
	mockMetadataService := new(MockKeypairMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "abc-123").
		Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestKeyHandler_DeleteByID(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", keys.ErrKeypairNotFound, http.StatusNotFound},
		{"database failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMetadataService := new(MockKeypairMetadataService)
			handler := NewKeyHandler(new(MockKeypairGenerationService), mockMetadataService)

			mockMetadataService.On("DeleteByID", mock.Anything, "abc-123").Return(tt.serviceErr)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

			handler.DeleteByID(c)

			assert.Equal(t, tt.wantStatus, c.Writer.Status())
			mockMetadataService.AssertExpectations(t)
		})
	}
}
