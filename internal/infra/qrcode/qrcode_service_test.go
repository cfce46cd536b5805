package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/config"
)

func testConfig(size int, level, baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              baseURL,
	}

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testConfig(256, tt.errorCorrectionLevel, "https://taplinknfc.example"))
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeService_NoConfig(t *testing.T) {
	service := NewQRCodeService(&config.Config{})
	assert.NotNil(t, service)
}

func TestQRCodeService_GenerateKeychainQR(t *testing.T) {
	service := NewQRCodeService(testConfig(256, "M", "https://taplinknfc.example/"))

	qrBytes, err := service.GenerateKeychainQR("KC-042")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateKeychainQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testConfig(tt.size, "M", "https://taplinknfc.example"))

			qrBytes, err := service.GenerateKeychainQR("KC-042")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
