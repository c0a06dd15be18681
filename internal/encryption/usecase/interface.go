package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// PublicKeyProvider is the key distribution collaborator. Implementations may
// cache; the use case asks for the key on every call and tolerates rotation
// between calls.
type PublicKeyProvider interface {
	PublicKey(ctx context.Context) (cryptoDomain.EncryptionKey, error)
}

// MetadataProvider supplies the device metadata snapshot for a call.
type MetadataProvider interface {
	Metadata(ctx context.Context) (encryptionDomain.DeviceMetadata, error)
}

// EncryptionUseCase validates and seals payment requests.
type EncryptionUseCase interface {
	// Validate checks the request fields and returns the result value.
	Validate(ctx context.Context, req *paymentDomain.PaymentRequest) paymentDomain.ValidationResult

	// Encrypt validates req and seals it for the current recipient key.
	// An invalid request fails with encryptionDomain.ErrInvalidRequest.
	Encrypt(
		ctx context.Context,
		req *paymentDomain.PaymentRequest,
		sessionID string,
	) (*encryptionDomain.PreparedPaymentRequest, error)
}
