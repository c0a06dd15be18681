package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	cryptoService "github.com/allisson/cardshield/internal/crypto/service"
)

// RunGenerateKey creates an RSA key pair for local testing of the encryption
// flow. The private key is written as PKCS#8 PEM to outPrivate (mode 0600), or
// to writer when outPrivate is empty. The public key is printed in the form a
// key distribution service hands out: a key id plus base64 DER.
//
// If keyID is empty, generates a default ID in format "rsa-key-YYYY-MM-DD".
// A bits value of 0 selects the default size.
func RunGenerateKey(logger *slog.Logger, writer io.Writer, keyID string, bits int, outPrivate string) error {
	if keyID == "" {
		keyID = fmt.Sprintf("rsa-key-%s", time.Now().Format("2006-01-02"))
	}

	priv, err := cryptoService.GenerateRSAKey(bits)
	if err != nil {
		return fmt.Errorf("failed to generate rsa key: %w", err)
	}

	key, err := cryptoDomain.NewEncryptionKey(keyID, &priv.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	pemBytes, err := cryptoService.MarshalPrivateKeyPEM(priv)
	if err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}
	defer cryptoDomain.Zero(pemBytes)

	if outPrivate != "" {
		if err := os.WriteFile(outPrivate, pemBytes, 0o600); err != nil {
			return fmt.Errorf("failed to write private key: %w", err)
		}
	}

	_, _ = fmt.Fprintf(writer, "KEY_ID=\"%s\"\n", key.KeyID)
	_, _ = fmt.Fprintf(writer, "PUBLIC_KEY=\"%s\"\n", key.PublicKey)
	if outPrivate == "" {
		_, _ = fmt.Fprintln(writer)
		_, _ = writer.Write(pemBytes)
	}

	logger.Info("rsa key generated",
		slog.String("key_id", key.KeyID),
		slog.Int("bits", priv.N.BitLen()),
		slog.String("private_key_path", outPrivate),
	)
	return nil
}
