package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeychainIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantNumber string
		wantSource Source
	}{
		{"nfc tap", "KC-042", "KC-042", SourceNFC},
		{"qr scan", "AQKC-042", "KC-042", SourceQR},
		{"qr scan lowercase prefix", "aqKC-042", "KC-042", SourceQR},
		{"bare prefix is nfc", "AQ", "AQ", SourceNFC},
		{"prefix mid-string ignored", "KCAQ42", "KCAQ42", SourceNFC},
		{"empty identifier", "", "", SourceNFC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, source := NormalizeKeychainIdentifier(tt.identifier)
			assert.Equal(t, tt.wantNumber, number)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}
