package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
)

// DeviceMetadata is a read-only snapshot of the client and device the request
// originates from. It is supplied per call by a metadata provider.
type DeviceMetadata struct {
	AppIdentifier      string `json:"appIdentifier"`
	SDKIdentifier      string `json:"sdkIdentifier"`
	SDKCreator         string `json:"sdkCreator"`
	PlatformIdentifier string `json:"platformIdentifier"`
	ScreenSize         string `json:"screenSize"`
	DeviceBrand        string `json:"deviceBrand"`
	DeviceType         string `json:"deviceType"`
	IPAddress          string `json:"ipAddress,omitempty"`
}

// Validate checks the members the receiving side requires.
func (m DeviceMetadata) Validate() error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.AppIdentifier, validation.Required),
		validation.Field(&m.SDKIdentifier, validation.Required),
		validation.Field(&m.PlatformIdentifier, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return nil
}

// Encode returns the standard base64 of the JSON form.
func (m DeviceMetadata) Encode() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", cryptoDomain.NewEncryptionError(cryptoDomain.ErrSerialization, err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeDeviceMetadata reverses Encode.
func DecodeDeviceMetadata(encoded string) (DeviceMetadata, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return DeviceMetadata{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	var m DeviceMetadata
	if err := json.Unmarshal(b, &m); err != nil {
		return DeviceMetadata{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	return m, nil
}
