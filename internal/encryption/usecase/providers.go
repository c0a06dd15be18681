package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
)

// StaticPublicKeyProvider always returns the same key distribution record.
type StaticPublicKeyProvider struct {
	Key cryptoDomain.EncryptionKey
}

// PublicKey implements PublicKeyProvider.
func (p StaticPublicKeyProvider) PublicKey(context.Context) (cryptoDomain.EncryptionKey, error) {
	return p.Key, nil
}

// StaticMetadataProvider always returns the same device metadata snapshot.
type StaticMetadataProvider struct {
	Snapshot encryptionDomain.DeviceMetadata
}

// Metadata implements MetadataProvider.
func (p StaticMetadataProvider) Metadata(context.Context) (encryptionDomain.DeviceMetadata, error) {
	return p.Snapshot, nil
}
