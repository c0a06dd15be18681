package app

import (
	"fmt"

	"github.com/allisson/cardshield/internal/encryption/usecase"
)

// MetadataProvider returns the device metadata provider built from configuration.
func (c *Container) MetadataProvider() usecase.MetadataProvider {
	return usecase.StaticMetadataProvider{Snapshot: c.config.DeviceMetadata()}
}

// EncryptionUseCase creates an encryption use case that obtains recipient keys
// from keys. It is not cached since the key source is chosen per invocation.
// The result is wrapped with metrics when METRICS_ENABLED is set.
func (c *Container) EncryptionUseCase(keys usecase.PublicKeyProvider) (usecase.EncryptionUseCase, error) {
	if keys == nil {
		return nil, fmt.Errorf("public key provider is required")
	}

	provider, err := c.CryptoProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get crypto provider for encryption use case: %w", err)
	}

	baseUseCase := usecase.NewEncryptionUseCase(provider, keys, c.MetadataProvider(), c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for encryption use case: %w", err)
		}
		return usecase.NewEncryptionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
