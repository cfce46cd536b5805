package service

// Location is the best-effort result of a geo-IP lookup. Any field may be
// nil; a lookup that finds nothing is not an error.
type Location struct {
	Country *string
	City    *string
	Lat     *float64
	Lon     *float64
}

// DeviceInfo is the best-effort result of user-agent parsing.
type DeviceInfo struct {
	OSName      *string
	BrowserName *string
	DeviceType  *string
}

// GeoLocator resolves an IP address to a location. Implementations must be
// local and fast: the click recorder calls this off the request path, but
// it must never depend on an external network call.
type GeoLocator interface {
	Locate(ipAddress string) Location
}

// AgentParser extracts device metadata from a User-Agent header.
type AgentParser interface {
	Parse(userAgent string) DeviceInfo
}
