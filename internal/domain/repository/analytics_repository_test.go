package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeBucket(t *testing.T) {
	assert.Equal(t, BucketDay, ParseTimeBucket("day"))
	assert.Equal(t, BucketWeek, ParseTimeBucket("week"))
	assert.Equal(t, BucketMonth, ParseTimeBucket("month"))

	// Anything else defaults to daily buckets.
	assert.Equal(t, BucketDay, ParseTimeBucket(""))
	assert.Equal(t, BucketDay, ParseTimeBucket("year"))
}
