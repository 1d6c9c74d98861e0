package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, "2024-03-01", DateKey(time.Date(2024, 3, 2, 5, 0, 0, 0, loc)))
}

func TestSeedStableWithinDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Seed(morning, "s"), Seed(evening, "s"))
}

func TestSeedVaries(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, Seed(day, "s"), Seed(day.AddDate(0, 0, 1), "s"))
	assert.NotEqual(t, Seed(day, "a"), Seed(day, "b"))
}
