package usecase

import (
	"context"
	"time"

	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
	"github.com/allisson/cardshield/internal/metrics"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// encryptionUseCaseWithMetrics decorates EncryptionUseCase with metrics instrumentation.
type encryptionUseCaseWithMetrics struct {
	next    EncryptionUseCase
	metrics metrics.BusinessMetrics
}

// NewEncryptionUseCaseWithMetrics wraps an EncryptionUseCase with metrics recording.
func NewEncryptionUseCaseWithMetrics(useCase EncryptionUseCase, m metrics.BusinessMetrics) EncryptionUseCase {
	return &encryptionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records the outcome and every failed field check.
func (e *encryptionUseCaseWithMetrics) Validate(
	ctx context.Context,
	req *paymentDomain.PaymentRequest,
) paymentDomain.ValidationResult {
	start := time.Now()
	result := e.next.Validate(ctx, req)

	status := metrics.StatusSuccess
	if !result.IsValid {
		status = metrics.StatusInvalid
	}

	productID := req.Product().ID
	for _, fieldErr := range result.Errors {
		e.metrics.RecordFieldError(ctx, productID, fieldErr.FieldID, fieldErr.ErrorType)
	}
	e.metrics.RecordOperation(ctx, metrics.DomainValidation, "validate", status)
	e.metrics.RecordDuration(ctx, metrics.DomainValidation, "validate", time.Since(start), status)

	return result
}

// Encrypt records metrics for payment request encryption.
func (e *encryptionUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	req *paymentDomain.PaymentRequest,
	sessionID string,
) (*encryptionDomain.PreparedPaymentRequest, error) {
	start := time.Now()
	prepared, err := e.next.Encrypt(ctx, req, sessionID)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	e.metrics.RecordOperation(ctx, metrics.DomainEncryption, "encrypt", status)
	e.metrics.RecordDuration(ctx, metrics.DomainEncryption, "encrypt", time.Since(start), status)

	return prepared, err
}
