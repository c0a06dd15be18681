package app

import (
	"context"
	"fmt"

	cryptoService "github.com/allisson/cardshield/internal/crypto/service"
)

// KeyStore returns the key store backing the crypto provider. KEYSTORE_URI
// selects a keeper-sealed store; empty keeps keys in plain memory.
func (c *Container) KeyStore() (cryptoService.KeyStore, error) {
	var err error
	c.keyStoreInit.Do(func() {
		c.keyStore, err = c.initKeyStore()
		if err != nil {
			c.initErrors["keyStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyStore"]; exists {
		return nil, storedErr
	}
	return c.keyStore, nil
}

// CryptoProvider returns the cryptographic provider used by the JWE composer.
func (c *Container) CryptoProvider() (cryptoService.CryptoProvider, error) {
	var err error
	c.cryptoProviderInit.Do(func() {
		c.cryptoProvider, err = c.initCryptoProvider()
		if err != nil {
			c.initErrors["cryptoProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cryptoProvider"]; exists {
		return nil, storedErr
	}
	return c.cryptoProvider, nil
}

// initKeyStore opens the key store for the configured URI.
func (c *Container) initKeyStore() (cryptoService.KeyStore, error) {
	store, err := cryptoService.OpenKeyStore(context.Background(), c.config.KeyStoreURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open key store: %w", err)
	}
	return store, nil
}

// initCryptoProvider creates the default crypto provider on top of the key store.
func (c *Container) initCryptoProvider() (cryptoService.CryptoProvider, error) {
	store, err := c.KeyStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get key store for crypto provider: %w", err)
	}
	return cryptoService.NewCryptoProvider(store), nil
}
