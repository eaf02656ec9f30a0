package v1

import (
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keypairGenerationService keys.KeypairGenerationService,
	keypairMetadataService keys.KeypairMetadataService,
	messageService keys.MessageService,
	primalityTester cryptoalg.PrimalityTester,
	defaultRounds int) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(keypairGenerationService, keypairMetadataService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Message Routes
	messageHandler := NewMessageHandler(messageService)
	v1.POST("/keys/:id/encrypt", messageHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", messageHandler.Decrypt)

	// Prime Routes
	primeHandler := NewPrimeHandler(primalityTester, defaultRounds)
	v1.GET("/primes/:n", primeHandler.IsPrime)
}
