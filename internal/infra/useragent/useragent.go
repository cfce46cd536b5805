// Package useragent extracts device metadata from User-Agent headers.
package useragent

import (
	"github.com/mileusna/useragent"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/service"
)

type agentParser struct{}

// New is the constructor for the user-agent parser.
func New() service.AgentParser {
	return &agentParser{}
}

// Parse extracts OS, browser and device class from the header. Fields the
// parser cannot determine stay nil.
func (p *agentParser) Parse(header string) service.DeviceInfo {
	if header == "" {
		return service.DeviceInfo{}
	}

	parsed := useragent.Parse(header)

	var info service.DeviceInfo
	if parsed.OS != "" {
		osName := parsed.OS
		info.OSName = &osName
	}
	if parsed.Name != "" {
		browser := parsed.Name
		info.BrowserName = &browser
	}

	deviceType := classify(parsed)
	info.DeviceType = &deviceType

	return info
}

func classify(parsed useragent.UserAgent) string {
	switch {
	case parsed.Mobile:
		return "mobile"
	case parsed.Tablet:
		return "tablet"
	case parsed.Bot:
		return "bot"
	case parsed.Desktop:
		return "desktop"
	}

	return "unknown"
}
