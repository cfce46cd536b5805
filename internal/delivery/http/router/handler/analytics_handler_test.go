package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/internal/domain/repository"
)

func statsContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestStatsRange_QueryParams(t *testing.T) {
	c := statsContext("/api/user/analytics/abc?startDate=2026-01-01&endDate=2026-01-31&groupBy=week")

	window := statsRange(c)

	start, err := time.Parse(dateLayout, "2026-01-01")
	require.NoError(t, err)
	end, err := time.Parse(dateLayout, "2026-01-31")
	require.NoError(t, err)

	assert.Equal(t, start, window.Start)
	assert.Equal(t, end, window.End)
	assert.Equal(t, repository.BucketWeek, window.GroupBy)
}

func TestStatsRange_Defaults(t *testing.T) {
	c := statsContext("/api/user/analytics/abc")

	window := statsRange(c)

	assert.True(t, window.Start.IsZero())
	assert.True(t, window.End.IsZero())
	assert.Equal(t, repository.BucketDay, window.GroupBy)
}

func TestStatsRange_UnparseableDates(t *testing.T) {
	c := statsContext("/api/user/analytics/abc?startDate=not-a-date&endDate=31/01/2026&groupBy=hour")

	window := statsRange(c)

	assert.True(t, window.Start.IsZero())
	assert.True(t, window.End.IsZero())
	assert.Equal(t, repository.BucketDay, window.GroupBy)
}
