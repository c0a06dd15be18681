package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardshield/internal/errors"
)

func validMetadata() DeviceMetadata {
	return DeviceMetadata{
		AppIdentifier:      "merchant-app/1.0",
		SDKIdentifier:      "GoClientSDK/v1.0.0",
		SDKCreator:         "cardshield",
		PlatformIdentifier: "linux/amd64",
		ScreenSize:         "1920x1080",
		DeviceBrand:        "generic",
		DeviceType:         "server",
	}
}

func TestDeviceMetadata(t *testing.T) {
	t.Run("encode is standard base64 json", func(t *testing.T) {
		encoded, err := validMetadata().Encode()
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"appIdentifier": "merchant-app/1.0",
			"sdkIdentifier": "GoClientSDK/v1.0.0",
			"sdkCreator": "cardshield",
			"platformIdentifier": "linux/amd64",
			"screenSize": "1920x1080",
			"deviceBrand": "generic",
			"deviceType": "server"
		}`, string(raw))
	})

	t.Run("decode round trip keeps ip address", func(t *testing.T) {
		m := validMetadata()
		m.IPAddress = "203.0.113.7"

		encoded, err := m.Encode()
		require.NoError(t, err)

		decoded, err := DecodeDeviceMetadata(encoded)
		require.NoError(t, err)
		assert.Equal(t, m, decoded)
	})

	t.Run("decode rejects garbage", func(t *testing.T) {
		_, err := DecodeDeviceMetadata("%%%")
		assert.ErrorIs(t, err, ErrInvalidMetadata)

		_, err = DecodeDeviceMetadata(base64.StdEncoding.EncodeToString([]byte("not json")))
		assert.ErrorIs(t, err, ErrInvalidMetadata)
	})

	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, validMetadata().Validate())

		m := validMetadata()
		m.SDKIdentifier = ""
		err := m.Validate()
		assert.ErrorIs(t, err, ErrInvalidMetadata)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
