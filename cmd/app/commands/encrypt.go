package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cardshield/internal/encryption/usecase"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// RunEncrypt seals the payment request for the session and prints the prepared
// request (compact token plus encoded device metadata) as JSON.
func RunEncrypt(
	ctx context.Context,
	encryptionUseCase usecase.EncryptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	req *paymentDomain.PaymentRequest,
	sessionID string,
) error {
	prepared, err := encryptionUseCase.Encrypt(ctx, req, sessionID)
	if err != nil {
		return fmt.Errorf("failed to encrypt payment request: %w", err)
	}

	if err := outputJSON(writer, prepared); err != nil {
		return fmt.Errorf("failed to output JSON: %w", err)
	}

	logger.Info("payment request encrypted",
		slog.String("product_id", req.Product().ID),
	)
	return nil
}
