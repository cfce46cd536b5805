package entity

import (
	"time"

	"github.com/google/uuid"
)

// Click is a rolling counter row keyed by the composite natural key
// (link, ip, keychain, source). Repeated clicks from the same visitor and
// asset increment ClickCount instead of creating new rows; the device and
// location fields are last-write-wins metadata overlaid on the counter.
//
// KeychainID is uuid.Nil for clicks that did not come through a keychain.
// The zero UUID, rather than NULL, keeps the composite unique index
// effective: Postgres treats NULLs as distinct, which would silently break
// the idempotent-counter invariant.
type Click struct {
	ID         uuid.UUID
	LinkID     uuid.UUID
	KeychainID uuid.UUID
	IPAddress  string
	Source     Source

	UserAgent string
	Referrer  string

	// Best-effort geo enrichment; nil when the lookup had no answer.
	Country *string
	City    *string
	Lat     *float64
	Lon     *float64

	// Best-effort device enrichment.
	OSName      *string
	BrowserName *string
	DeviceType  *string

	ClickCount int64
	FirstSeen  time.Time
	LastSeen   time.Time
}

// ClickEvent is the raw material captured on the request path before any
// enrichment happens. It crosses the channel into the recorder workers so
// the redirect response never waits on geo or UA lookups.
type ClickEvent struct {
	LinkID     uuid.UUID
	KeychainID uuid.UUID // uuid.Nil for direct links
	Source     Source
	IPAddress  string
	UserAgent  string
	Referrer   string
	OccurredAt time.Time
}
