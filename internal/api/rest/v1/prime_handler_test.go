//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPrimeContext(w *httptest.ResponseRecorder, n, rawQuery string) *gin.Context {
	req, _ := http.NewRequest("GET", "/primes/"+n+rawQuery, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "n", Value: n}}
	return c
}

func TestPrimeHandler_IsPrime_DefaultRounds(t *testing.T) {
	mockTester := new(MockPrimalityTester)
	handler := NewPrimeHandler(mockTester, 10)

	mockTester.On("IsPrime", uint64(2147483647), 10).Return(true)

	w := httptest.NewRecorder()
	handler.IsPrime(newPrimeContext(w, "2147483647", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"n": 2147483647, "rounds": 10, "prime": true}`, w.Body.String())
	mockTester.AssertExpectations(t)
}

func TestPrimeHandler_IsPrime_CustomRounds(t *testing.T) {
	mockTester := new(MockPrimalityTester)
	handler := NewPrimeHandler(mockTester, 10)

	mockTester.On("IsPrime", uint64(561), 32).Return(false)

	w := httptest.NewRecorder()
	handler.IsPrime(newPrimeContext(w, "561", "?rounds=32"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"prime":false`)
	mockTester.AssertExpectations(t)
}

func TestPrimeHandler_IsPrime_BadInput(t *testing.T) {
	tests := []struct {
		name     string
		n        string
		rawQuery string
	}{
		{"negative candidate", "-7", ""},
		{"not a number", "seven", ""},
		{"too large", "18446744073709551616", ""},
		{"zero rounds", "7", "?rounds=0"},
		{"too many rounds", "7", "?rounds=65"},
		{"non-numeric rounds", "7", "?rounds=many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTester := new(MockPrimalityTester)
			handler := NewPrimeHandler(mockTester, 10)

			w := httptest.NewRecorder()
			handler.IsPrime(newPrimeContext(w, tt.n, tt.rawQuery))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockTester.AssertNotCalled(t, "IsPrime", mock.Anything, mock.Anything)
		})
	}
}
