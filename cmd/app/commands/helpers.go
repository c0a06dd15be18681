// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/cardshield/internal/app"
	paymentDomain "github.com/allisson/cardshield/internal/payment/domain"
	"github.com/allisson/cardshield/internal/payment/dto"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// RequestFiles names the JSON documents a payment request is assembled from.
// AccountOnFile is optional and, when set, replaces any account on file
// embedded in the values document.
type RequestFiles struct {
	Product       string
	Values        string
	AccountOnFile string
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// LoadPaymentRequest reads the product definition and the entered values and
// builds a payment request from them.
func LoadPaymentRequest(files RequestFiles) (*paymentDomain.PaymentRequest, error) {
	var def dto.ProductDefinition
	if err := readJSONFile(files.Product, &def); err != nil {
		return nil, fmt.Errorf("failed to read product definition: %w", err)
	}
	product, err := dto.ToPaymentProduct(def)
	if err != nil {
		return nil, err
	}

	var values dto.PaymentValues
	if err := readJSONFile(files.Values, &values); err != nil {
		return nil, fmt.Errorf("failed to read payment values: %w", err)
	}
	if files.AccountOnFile != "" {
		var aof dto.AccountOnFile
		if err := readJSONFile(files.AccountOnFile, &aof); err != nil {
			return nil, fmt.Errorf("failed to read account on file: %w", err)
		}
		values.AccountOnFile = &aof
	}

	req, err := paymentDomain.NewPaymentRequest(product)
	if err != nil {
		return nil, err
	}
	if err := dto.ApplyPaymentValues(req, values); err != nil {
		return nil, fmt.Errorf("failed to apply payment values: %w", err)
	}
	return req, nil
}

// readJSONFile decodes the JSON document at path into v, rejecting unknown fields.
func readJSONFile(path string, v any) error {
	f, err := os.Open(path) //nolint:gosec // path is an operator supplied CLI argument
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

// outputJSON writes v as indented JSON followed by a newline.
func outputJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
