package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// MaxRounds caps the Miller-Rabin rounds a client may request
const MaxRounds = 64

// PrimeHandler defines the interface for primality queries
type PrimeHandler interface {
	IsPrime(ctx *gin.Context)
}

type primeHandler struct {
	tester        cryptoalg.PrimalityTester
	defaultRounds int
}

// NewPrimeHandler creates a new PrimeHandler
func NewPrimeHandler(tester cryptoalg.PrimalityTester, defaultRounds int) PrimeHandler {
	return &primeHandler{
		tester:        tester,
		defaultRounds: defaultRounds,
	}
}

// IsPrime handles the GET request to test an integer for primality
// @Summary Probabilistic primality test
// @Tags Prime
// @Produce json
// @Param n path int true "Candidate"
// @Param rounds query int false "Miller-Rabin rounds"
// @Success 200 {object} PrimeResponse
// @Failure 400 {object} ErrorResponse
// @Router /primes/{n} [get]
func (handler *primeHandler) IsPrime(ctx *gin.Context) {
	n, err := strconv.ParseUint(ctx.Param("n"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid candidate: %v", err)})
		return
	}

	rounds := handler.defaultRounds
	if value := ctx.Query("rounds"); len(value) > 0 {
		rounds, err = strconv.Atoi(value)
		if err != nil || rounds < 1 || rounds > MaxRounds {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("rounds must be an integer in [1, %d]", MaxRounds)})
			return
		}
	}

	ctx.JSON(http.StatusOK, PrimeResponse{
		N:      n,
		Rounds: rounds,
		Prime:  handler.tester.IsPrime(n, rounds),
	})
}
