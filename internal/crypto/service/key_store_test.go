package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestOpenKeeper(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})
}

func TestOpenKeyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_EmptyURIIsMemory", func(t *testing.T) {
		store, err := OpenKeyStore(ctx, "")
		require.NoError(t, err)
		assert.IsType(t, &MemoryKeyStore{}, store)
		assert.NoError(t, store.Close())
	})

	t.Run("Success_KeeperURI", func(t *testing.T) {
		store, err := OpenKeyStore(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		assert.IsType(t, &KeeperKeyStore{}, store)
		assert.NoError(t, store.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		_, err := OpenKeyStore(ctx, "invalid://uri")
		assert.Error(t, err)
	})
}

func TestKeyStores(t *testing.T) {
	ctx := context.Background()
	priv := recipientKey(t)

	keeper, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
	require.NoError(t, err)

	stores := map[string]KeyStore{
		"memory": NewMemoryKeyStore(),
		"keeper": NewKeeperKeyStore(keeper),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			defer func() {
				assert.NoError(t, store.Close())
			}()

			t.Run("store retrieve delete", func(t *testing.T) {
				require.NoError(t, store.StoreKey(ctx, "kid-1", &priv.PublicKey))

				pub, err := store.RetrieveKey(ctx, "kid-1")
				require.NoError(t, err)
				assert.True(t, priv.PublicKey.Equal(pub))

				require.NoError(t, store.DeleteKey(ctx, "kid-1"))
				_, err = store.RetrieveKey(ctx, "kid-1")
				assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotFound)
			})

			t.Run("delete missing tag", func(t *testing.T) {
				assert.NoError(t, store.DeleteKey(ctx, "missing"))
			})

			t.Run("nil key", func(t *testing.T) {
				err := store.StoreKey(ctx, "kid-nil", nil)
				assert.ErrorIs(t, err, cryptoDomain.ErrKeyUnavailable)
			})

			t.Run("concurrent tags", func(t *testing.T) {
				var g errgroup.Group
				for i := range 8 {
					tag := fmt.Sprintf("tag-%d", i)
					g.Go(func() error {
						if err := store.StoreKey(ctx, tag, &priv.PublicKey); err != nil {
							return err
						}
						if _, err := store.RetrieveKey(ctx, tag); err != nil {
							return err
						}
						return store.DeleteKey(ctx, tag)
					})
				}
				require.NoError(t, g.Wait())
			})
		})
	}
}

func TestKeeperKeyStore_SealsAtRest(t *testing.T) {
	ctx := context.Background()
	priv := recipientKey(t)

	keeper, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
	require.NoError(t, err)
	store := NewKeeperKeyStore(keeper)
	defer func() {
		assert.NoError(t, store.Close())
	}()

	require.NoError(t, store.StoreKey(ctx, "kid-1", &priv.PublicKey))

	sealed, ok := store.sealed.get("kid-1")
	require.True(t, ok)
	der, err := marshalPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	assert.NotEqual(t, der, sealed)

	// A different keeper cannot open the sealed key.
	other, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
	require.NoError(t, err)
	foreign := &KeeperKeyStore{keeper: other, sealed: store.sealed}
	defer func() {
		assert.NoError(t, other.Close())
	}()

	_, err = foreign.RetrieveKey(ctx, "kid-1")
	assert.ErrorContains(t, err, "failed to open public key")
}

func TestMemoryKeyStore_Len(t *testing.T) {
	ctx := context.Background()
	priv := recipientKey(t)
	store := NewMemoryKeyStore()

	require.NoError(t, store.StoreKey(ctx, "a", &priv.PublicKey))
	require.NoError(t, store.StoreKey(ctx, "a", &priv.PublicKey))
	require.NoError(t, store.StoreKey(ctx, "b", &priv.PublicKey))
	assert.Equal(t, 2, store.Len())
}
