package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecaseMocks "github.com/allisson/cardshield/internal/encryption/usecase/mocks"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
)

func TestRunValidate(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("success", func(t *testing.T) {
		req := loadRequest(t, validValuesJSON)
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		mockUseCase.On("Validate", ctx, req).Return(paymentDomain.ValidationResult{
			IsValid: true,
			Errors:  []paymentDomain.ValidationError{},
		}).Once()

		var out bytes.Buffer
		err := RunValidate(ctx, mockUseCase, logger, &out, req)
		require.NoError(t, err)

		var result paymentDomain.ValidationResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.True(t, result.IsValid)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-request", func(t *testing.T) {
		req := loadRequest(t, `{"values": {"cardNumber": "4567350000427978"}}`)
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		mockUseCase.On("Validate", ctx, req).Return(req.Validate()).Once()

		var out bytes.Buffer
		err := RunValidate(ctx, mockUseCase, logger, &out, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed: 2 error(s)")

		var result paymentDomain.ValidationResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "cardNumber", result.Errors[0].FieldID)
		assert.Equal(t, "luhn", result.Errors[0].ErrorType)
		assert.Equal(t, "cvv", result.Errors[1].FieldID)
		assert.Equal(t, "required", result.Errors[1].ErrorType)
	})

	t.Run("logs-failing-fields", func(t *testing.T) {
		req := loadRequest(t, `{"values": {"cardNumber": "4567350000427978"}}`)
		mockUseCase := &usecaseMocks.MockEncryptionUseCase{}
		mockUseCase.On("Validate", ctx, req).Return(req.Validate()).Once()

		var logs bytes.Buffer
		jsonLogger := slog.New(slog.NewJSONHandler(&logs, nil))

		err := RunValidate(ctx, mockUseCase, jsonLogger, &bytes.Buffer{}, req)
		require.Error(t, err)

		var warnings []map[string]any
		decoder := json.NewDecoder(&logs)
		for decoder.More() {
			var entry map[string]any
			require.NoError(t, decoder.Decode(&entry))
			if entry["msg"] == "field failed validation" {
				warnings = append(warnings, entry)
			}
		}
		require.Len(t, warnings, 2)
		assert.Equal(t, "cardNumber", warnings[0]["field_id"])
		assert.Equal(t, []any{"luhn"}, warnings[0]["error_types"])
		assert.Equal(t, "cvv", warnings[1]["field_id"])
		assert.Equal(t, []any{"required"}, warnings[1]["error_types"])
	})
}
