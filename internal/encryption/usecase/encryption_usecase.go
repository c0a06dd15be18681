// Package usecase implements the payment request sealing flow.
//
// Encrypt runs, in order: validation of the request together with a snapshot
// of the exact state that is sealed, key distribution lookup,
// staging of the recipient key in the key store under a per call tag, payload
// serialization, JWE composition and device metadata encoding. Any failure
// aborts the call and no partial result is returned.
package usecase

import (
	"context"
	"crypto/rsa"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	cryptoService "github.com/allisson/cardshield/internal/crypto/service"
	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// encryptionUseCase implements EncryptionUseCase.
type encryptionUseCase struct {
	provider cryptoService.CryptoProvider
	composer *cryptoService.JWEComposer
	keys     PublicKeyProvider
	metadata MetadataProvider
	logger   *slog.Logger
}

// NewEncryptionUseCase creates the use case. The composer is built on provider.
func NewEncryptionUseCase(
	provider cryptoService.CryptoProvider,
	keys PublicKeyProvider,
	metadata MetadataProvider,
	logger *slog.Logger,
) EncryptionUseCase {
	return &encryptionUseCase{
		provider: provider,
		composer: cryptoService.NewJWEComposer(provider),
		keys:     keys,
		metadata: metadata,
		logger:   logger,
	}
}

// Validate implements EncryptionUseCase.
func (uc *encryptionUseCase) Validate(
	ctx context.Context,
	req *paymentDomain.PaymentRequest,
) paymentDomain.ValidationResult {
	result := req.Validate()
	uc.logger.DebugContext(ctx, "payment request validated",
		slog.String("product_id", req.Product().ID),
		slog.Bool("valid", result.IsValid),
		slog.Int("error_count", len(result.Errors)),
	)
	return result
}

// Encrypt implements EncryptionUseCase.
func (uc *encryptionUseCase) Encrypt(
	ctx context.Context,
	req *paymentDomain.PaymentRequest,
	sessionID string,
) (*encryptionDomain.PreparedPaymentRequest, error) {
	productID := req.Product().ID

	if sessionID == "" {
		return nil, encryptionDomain.ErrMissingSessionID
	}
	result, snap := req.ValidateAndSnapshot()
	if !result.IsValid {
		uc.logger.DebugContext(ctx, "refusing to encrypt invalid payment request",
			slog.String("product_id", productID),
			slog.Int("error_count", len(result.Errors)),
		)
		return nil, fmt.Errorf("%w: %w", encryptionDomain.ErrInvalidRequest, result.Err())
	}

	prepared, keyID, err := uc.seal(ctx, snap, sessionID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to encrypt payment request",
			slog.String("product_id", productID),
			slog.String("key_id", keyID),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.DebugContext(ctx, "payment request encrypted",
		slog.String("product_id", productID),
		slog.String("key_id", keyID),
	)
	return prepared, nil
}

// seal performs the cryptographic part of Encrypt on the validated snapshot. It
// returns the key id used, when known, for logging.
func (uc *encryptionUseCase) seal(
	ctx context.Context,
	snap paymentDomain.RequestSnapshot,
	sessionID string,
) (*encryptionDomain.PreparedPaymentRequest, string, error) {
	key, err := uc.keys.PublicKey(ctx)
	if err != nil {
		return nil, "", cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
	}
	if err := key.Validate(); err != nil {
		return nil, key.KeyID, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
	}

	pub, err := uc.stageKey(ctx, key)
	if err != nil {
		return nil, key.KeyID, err
	}

	nonce, err := uc.provider.UUID()
	if err != nil {
		return nil, key.KeyID, cryptoDomain.NewEncryptionError(cryptoDomain.ErrRandomGeneration, err)
	}

	plaintext, err := encryptionDomain.NewPayload(sessionID, nonce, snap).Marshal()
	if err != nil {
		return nil, key.KeyID, err
	}
	defer cryptoDomain.Zero(plaintext)

	token, err := uc.composer.Encrypt(plaintext, pub, key.KeyID)
	if err != nil {
		return nil, key.KeyID, err
	}

	metadata, err := uc.metadata.Metadata(ctx)
	if err != nil {
		return nil, key.KeyID, cryptoDomain.NewEncryptionError(cryptoDomain.ErrSerialization, err)
	}
	if err := metadata.Validate(); err != nil {
		return nil, key.KeyID, err
	}
	encoded, err := metadata.Encode()
	if err != nil {
		return nil, key.KeyID, err
	}

	return &encryptionDomain.PreparedPaymentRequest{
		EncryptedPayload: token,
		EncodedMetadata:  encoded,
	}, key.KeyID, nil
}

// stageKey parses the distributed key, stores it under a per call tag and
// reads the handle back. The tag is removed before returning.
func (uc *encryptionUseCase) stageKey(ctx context.Context, key cryptoDomain.EncryptionKey) (*rsa.PublicKey, error) {
	pub, err := key.ParsePublicKey()
	if err != nil {
		return nil, err
	}

	callID, err := uc.provider.UUID()
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrRandomGeneration, err)
	}
	tag := key.KeyID + "/" + callID.String()

	if err := uc.provider.StoreKey(ctx, tag, pub); err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
	}
	defer func() {
		if err := uc.provider.DeleteKey(ctx, tag); err != nil {
			uc.logger.WarnContext(ctx, "failed to delete staged public key",
				slog.String("key_id", key.KeyID),
				slog.Any("error", err),
			)
		}
	}()

	handle, err := uc.provider.RetrieveKey(ctx, tag)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
	}
	return handle, nil
}
