package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimezoneLocation(t *testing.T) {
	loc, err := parseTimezoneLocation("Asia/Manila")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Manila", loc.String())

	loc, err = parseTimezoneLocation("+08:00")
	require.NoError(t, err)
	_, offset := time.Now().In(loc).Zone()
	assert.Equal(t, 8*3600, offset)

	_, err = parseTimezoneLocation("Not/AZone")
	assert.Error(t, err)
}

func TestMatchOriginPattern(t *testing.T) {
	assert.True(t, matchOriginPattern("app.example.com", "app.example.com"))
	assert.True(t, matchOriginPattern("*.example.com", "app.example.com"))
	assert.False(t, matchOriginPattern("*.example.com", "example.org"))
	assert.True(t, matchOriginPattern("localhost:*", "localhost:5173"))
	assert.False(t, matchOriginPattern("localhost:*", "example.com:5173"))
}

func TestExtractOriginHost(t *testing.T) {
	assert.Equal(t, "app.example.com", extractOriginHost("https://app.example.com"))
	assert.Equal(t, "localhost:5173", extractOriginHost("http://localhost:5173"))
	assert.Equal(t, "not a url", extractOriginHost("not a url"))
}
