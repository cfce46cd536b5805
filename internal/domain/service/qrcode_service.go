package service

// QRCodeService renders scannable QR codes for keychains. The encoded
// payload is the public /k/ URL carrying the QR-prefixed keychain number,
// so scans are classified as qr-sourced at resolution time.
type QRCodeService interface {
	// GenerateKeychainQR returns a PNG image encoding the redirect URL for
	// the given keychain number.
	GenerateKeychainQR(keychainNumber string) ([]byte, error)
}
