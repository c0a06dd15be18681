package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cardshield/internal/encryption/usecase"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

// RunValidate checks the payment request and prints the validation result as
// JSON. It returns an error when the request is invalid so the process exits
// non-zero.
func RunValidate(
	ctx context.Context,
	encryptionUseCase usecase.EncryptionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	req *paymentDomain.PaymentRequest,
) error {
	result := encryptionUseCase.Validate(ctx, req)

	if err := outputJSON(writer, result); err != nil {
		return fmt.Errorf("failed to output JSON: %w", err)
	}

	for _, def := range req.Product().Fields() {
		errs := result.ErrorsFor(def.ID)
		if len(errs) == 0 {
			continue
		}
		errorTypes := make([]string, 0, len(errs))
		for _, e := range errs {
			errorTypes = append(errorTypes, e.ErrorType)
		}
		logger.Warn("field failed validation",
			slog.String("field_id", def.ID),
			slog.Any("error_types", errorTypes),
		)
	}

	logger.Info("validation completed",
		slog.String("product_id", req.Product().ID),
		slog.Bool("valid", result.IsValid),
		slog.Int("error_count", len(result.Errors)),
	)

	if !result.IsValid {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}
	return nil
}
