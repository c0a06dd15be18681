package service

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"sync"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// OpenKeeper opens a gocloud secrets keeper for keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func OpenKeeper(ctx context.Context, keyURI string) (Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// OpenKeyStore returns a MemoryKeyStore when keyURI is empty, otherwise a
// KeeperKeyStore sealing keys with the keeper at keyURI.
func OpenKeyStore(ctx context.Context, keyURI string) (KeyStore, error) {
	if keyURI == "" {
		return NewMemoryKeyStore(), nil
	}
	keeper, err := OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	return NewKeeperKeyStore(keeper), nil
}

// MemoryKeyStore keeps DER encoded public keys in process memory.
type MemoryKeyStore struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

// NewMemoryKeyStore creates an empty in-memory store.
func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{keys: make(map[string][]byte)}
}

// StoreKey implements KeyStore.
func (s *MemoryKeyStore) StoreKey(_ context.Context, tag string, pub *rsa.PublicKey) error {
	der, err := marshalPublicKey(pub)
	if err != nil {
		return err
	}
	s.put(tag, der)
	return nil
}

// RetrieveKey implements KeyStore.
func (s *MemoryKeyStore) RetrieveKey(_ context.Context, tag string) (*rsa.PublicKey, error) {
	der, ok := s.get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrKeyNotFound, tag)
	}
	return cryptoDomain.ParseRSAPublicKeyDER(der)
}

// DeleteKey implements KeyStore.
func (s *MemoryKeyStore) DeleteKey(_ context.Context, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, tag)
	return nil
}

// Close implements KeyStore.
func (s *MemoryKeyStore) Close() error {
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryKeyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

func (s *MemoryKeyStore) put(tag string, b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[tag] = b
}

func (s *MemoryKeyStore) get(tag string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.keys[tag]
	return b, ok
}

// KeeperKeyStore keeps public keys sealed by a Keeper. Nothing is stored in
// the clear.
type KeeperKeyStore struct {
	keeper Keeper
	sealed *MemoryKeyStore
}

// NewKeeperKeyStore creates a store sealing keys with keeper. The store owns
// the keeper and closes it on Close.
func NewKeeperKeyStore(keeper Keeper) *KeeperKeyStore {
	return &KeeperKeyStore{keeper: keeper, sealed: NewMemoryKeyStore()}
}

// StoreKey implements KeyStore.
func (s *KeeperKeyStore) StoreKey(ctx context.Context, tag string, pub *rsa.PublicKey) error {
	der, err := marshalPublicKey(pub)
	if err != nil {
		return err
	}
	sealed, err := s.keeper.Encrypt(ctx, der)
	if err != nil {
		return fmt.Errorf("failed to seal public key: %w", err)
	}
	s.sealed.put(tag, sealed)
	return nil
}

// RetrieveKey implements KeyStore.
func (s *KeeperKeyStore) RetrieveKey(ctx context.Context, tag string) (*rsa.PublicKey, error) {
	sealed, ok := s.sealed.get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrKeyNotFound, tag)
	}
	der, err := s.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to open public key: %w", err)
	}
	return cryptoDomain.ParseRSAPublicKeyDER(der)
}

// DeleteKey implements KeyStore.
func (s *KeeperKeyStore) DeleteKey(ctx context.Context, tag string) error {
	return s.sealed.DeleteKey(ctx, tag)
}

// Close implements KeyStore.
func (s *KeeperKeyStore) Close() error {
	return s.keeper.Close()
}

func marshalPublicKey(pub *rsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, fmt.Errorf("rsa public key is nil"))
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, cryptoDomain.NewEncryptionError(cryptoDomain.ErrKeyUnavailable, err)
	}
	return der, nil
}
