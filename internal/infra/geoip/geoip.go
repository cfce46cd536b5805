// Package geoip resolves IP addresses to coarse locations using a local
// MaxMind City database. Lookups never leave the process.
package geoip

import (
	"log/slog"
	"net"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/fx"

	"github.com/lreale4125-ux/taplinknfc/config"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
)

// Params defines the parameters required for the geo locator.
type Params struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type geoLocator struct {
	reader *geoip2.Reader
}

// New opens the configured MaxMind database. When no database is
// configured, or it fails to open, enrichment degrades to a no-op locator
// instead of failing startup.
func New(params Params) service.GeoLocator {
	if params.Config.GeoIP == nil || params.Config.GeoIP.DatabasePath == "" {
		params.Logger.Info("GeoIP database not configured, location enrichment disabled")

		return &geoLocator{}
	}

	reader, err := geoip2.Open(params.Config.GeoIP.DatabasePath)
	if err != nil {
		params.Logger.Warn("Failed to open GeoIP database, location enrichment disabled",
			slog.String("path", params.Config.GeoIP.DatabasePath),
			slog.String("error", err.Error()))

		return &geoLocator{}
	}

	params.LC.Append(fx.StopHook(func() error {
		return reader.Close()
	}))

	return &geoLocator{reader: reader}
}

// Locate resolves an IP address to a location. Private, malformed, or
// unknown addresses return an empty Location.
func (g *geoLocator) Locate(ipAddress string) service.Location {
	if g.reader == nil {
		return service.Location{}
	}

	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return service.Location{}
	}

	record, err := g.reader.City(ip)
	if err != nil {
		return service.Location{}
	}

	var location service.Location
	if name := record.Country.Names["en"]; name != "" {
		location.Country = &name
	}
	if name := record.City.Names["en"]; name != "" {
		location.City = &name
	}
	if record.Location.Latitude != 0 || record.Location.Longitude != 0 {
		lat := record.Location.Latitude
		lon := record.Location.Longitude
		location.Lat = &lat
		location.Lon = &lon
	}

	return location
}
