package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	cryptoService "github.com/allisson/cardshield/internal/crypto/service"
	encryptionDomain "github.com/allisson/cardshield/internal/encryption/domain"
)

// RunDecrypt opens a compact token with the PEM private key at privateKeyPath
// and prints the plaintext. When encodedMetadata is set it is decoded and
// printed as JSON on the following line. It plays the role of the receiving
// party and exists to verify requests produced by encrypt.
func RunDecrypt(logger *slog.Logger, writer io.Writer, privateKeyPath, token, encodedMetadata string) error {
	var metadata *encryptionDomain.DeviceMetadata
	if encodedMetadata = strings.TrimSpace(encodedMetadata); encodedMetadata != "" {
		m, err := encryptionDomain.DecodeDeviceMetadata(encodedMetadata)
		if err != nil {
			return fmt.Errorf("failed to decode metadata: %w", err)
		}
		metadata = &m
	}

	pemBytes, err := os.ReadFile(privateKeyPath) //nolint:gosec // path is an operator supplied CLI argument
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}
	defer cryptoDomain.Zero(pemBytes)

	priv, err := cryptoService.ParsePrivateKeyPEM(pemBytes)
	if err != nil {
		return fmt.Errorf("failed to parse private key: %w", err)
	}

	composer := cryptoService.NewJWEComposer(cryptoService.NewCryptoProvider(cryptoService.NewMemoryKeyStore()))
	plaintext, err := composer.Decrypt(strings.TrimSpace(token), priv)
	if err != nil {
		return fmt.Errorf("failed to decrypt token: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	_, _ = writer.Write(plaintext)
	_, _ = fmt.Fprintln(writer)

	if metadata != nil {
		if err := outputJSON(writer, metadata); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	}

	logger.Info("token decrypted", slog.Int("plaintext_bytes", len(plaintext)))
	return nil
}
