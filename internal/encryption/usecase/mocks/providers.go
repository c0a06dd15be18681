// Package mocks provides mock implementations of the encryption use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// MockPublicKeyProvider is a mock implementation of PublicKeyProvider.
type MockPublicKeyProvider struct {
	mock.Mock
}

// PublicKey mocks the PublicKey method.
func (m *MockPublicKeyProvider) PublicKey(ctx context.Context) (cryptoDomain.EncryptionKey, error) {
	args := m.Called(ctx)
	return args.Get(0).(cryptoDomain.EncryptionKey), args.Error(1)
}

// MockMetadataProvider is a mock implementation of MetadataProvider.
type MockMetadataProvider struct {
	mock.Mock
}

// Metadata mocks the Metadata method.
func (m *MockMetadataProvider) Metadata(ctx context.Context) (encryptionDomain.DeviceMetadata, error) {
	args := m.Called(ctx)
	return args.Get(0).(encryptionDomain.DeviceMetadata), args.Error(1)
}

// MockEncryptionUseCase is a mock implementation of EncryptionUseCase.
type MockEncryptionUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method.
func (m *MockEncryptionUseCase) Validate(
	ctx context.Context,
	req *paymentDomain.PaymentRequest,
) paymentDomain.ValidationResult {
	args := m.Called(ctx, req)
	return args.Get(0).(paymentDomain.ValidationResult)
}

// Encrypt mocks the Encrypt method.
func (m *MockEncryptionUseCase) Encrypt(
	ctx context.Context,
	req *paymentDomain.PaymentRequest,
	sessionID string,
) (*encryptionDomain.PreparedPaymentRequest, error) {
	args := m.Called(ctx, req, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encryptionDomain.PreparedPaymentRequest), args.Error(1)
}
