//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeypairGenerationService is a mock implementation of KeypairGenerationService
type MockKeypairGenerationService struct {
	mock.Mock
}

func (m *MockKeypairGenerationService) Generate(ctx context.Context, exponent uint64) (*keys.KeypairMeta, error) {
	args := m.Called(ctx, exponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeypairMeta), args.Error(1)
}

// MockKeypairMetadataService is a mock implementation of KeypairMetadataService
type MockKeypairMetadataService struct {
	mock.Mock
}

func (m *MockKeypairMetadataService) List(ctx context.Context, query *keys.KeypairQuery) ([]*keys.KeypairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeypairMeta), args.Error(1)
}

func (m *MockKeypairMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeypairMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeypairMeta), args.Error(1)
}

func (m *MockKeypairMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Encrypt(ctx context.Context, keyID, message string) (string, error) {
	args := m.Called(ctx, keyID, message)
	return args.String(0), args.Error(1)
}

func (m *MockMessageService) Decrypt(ctx context.Context, keyID, ciphertext string) (string, error) {
	args := m.Called(ctx, keyID, ciphertext)
	return args.String(0), args.Error(1)
}

// MockPrimalityTester is a mock implementation of PrimalityTester
type MockPrimalityTester struct {
	mock.Mock
}

func (m *MockPrimalityTester) IsPrime(n uint64, rounds int) bool {
	args := m.Called(n, rounds)
	return args.Bool(0)
}
