package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	ipadUA    = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	botUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestAgentParser_Parse_Mobile(t *testing.T) {
	parser := New()

	info := parser.Parse(iphoneUA)
	require.NotNil(t, info.OSName)
	assert.Equal(t, "iOS", *info.OSName)
	require.NotNil(t, info.BrowserName)
	assert.Equal(t, "Safari", *info.BrowserName)
	require.NotNil(t, info.DeviceType)
	assert.Equal(t, "mobile", *info.DeviceType)
}

func TestAgentParser_Parse_Tablet(t *testing.T) {
	parser := New()

	info := parser.Parse(ipadUA)
	require.NotNil(t, info.DeviceType)
	assert.Equal(t, "tablet", *info.DeviceType)
}

func TestAgentParser_Parse_Desktop(t *testing.T) {
	parser := New()

	info := parser.Parse(desktopUA)
	require.NotNil(t, info.OSName)
	assert.Equal(t, "Windows", *info.OSName)
	require.NotNil(t, info.BrowserName)
	assert.Equal(t, "Chrome", *info.BrowserName)
	require.NotNil(t, info.DeviceType)
	assert.Equal(t, "desktop", *info.DeviceType)
}

func TestAgentParser_Parse_Bot(t *testing.T) {
	parser := New()

	info := parser.Parse(botUA)
	require.NotNil(t, info.DeviceType)
	assert.Equal(t, "bot", *info.DeviceType)
}

func TestAgentParser_Parse_Empty(t *testing.T) {
	parser := New()

	info := parser.Parse("")
	assert.Nil(t, info.OSName)
	assert.Nil(t, info.BrowserName)
	assert.Nil(t, info.DeviceType)
}
