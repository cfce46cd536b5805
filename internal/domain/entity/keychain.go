package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source classifies how a click reached us.
type Source string

const (
	SourceDirect Source = "direct" // /r/:linkId, no physical asset involved
	SourceQR     Source = "qr"     // keychain identifier carried the QR prefix
	SourceNFC    Source = "nfc"    // bare keychain identifier
)

// QRPrefix marks keychain identifiers that were scanned from a printed QR
// code rather than tapped via NFC. The canonical scheme: an identifier
// starting with "AQ" (case-insensitive) is a QR scan and the prefix is
// stripped before lookup; anything else is an NFC tap.
const QRPrefix = "AQ"

// Keychain is a physical asset (QR code or NFC tag) bound to exactly one
// link. It is created once per printed asset and never mutated.
type Keychain struct {
	ID             uuid.UUID
	KeychainNumber string // unique, stored without the QR prefix
	LinkID         uuid.UUID
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
}

// NormalizeKeychainIdentifier splits an inbound identifier into the stored
// keychain number and its source classification.
func NormalizeKeychainIdentifier(identifier string) (number string, source Source) {
	if len(identifier) > len(QRPrefix) && strings.EqualFold(identifier[:len(QRPrefix)], QRPrefix) {
		return identifier[len(QRPrefix):], SourceQR
	}

	return identifier, SourceNFC
}
