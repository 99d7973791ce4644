package pagedate_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/frederickpi/pagedate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes dates as ISO strings and absent values as null", func(t *testing.T) {
		t.Parallel()

		r := &pagedate.Result{
			PublishedDate:   date(2020, time.May, 1),
			PublishedMethod: pagedate.MethodStructuredMeta,
			ModifiedMethod:  pagedate.MethodNotFound,
			PublishedRaw:    "2020-05-01T12:00:00Z",
			LastDateFound:   date(2021, time.June, 3),
			DatesFound:      []time.Time{date(2020, time.May, 1), date(2021, time.June, 3)},
			PubConfidence:   pagedate.ConfidenceHigh,
			ModConfidence:   pagedate.ConfidenceLow,
		}

		data, err := json.Marshal(r)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"published_date": "2020-05-01",
			"modified_date": null,
			"published_method": "structured-meta",
			"modified_method": "not-found",
			"published_raw": "2020-05-01T12:00:00Z",
			"modified_raw": null,
			"last_date_found": "2021-06-03",
			"dates_found": ["2020-05-01", "2021-06-03"],
			"pub_confidence": "high",
			"mod_confidence": "low"
		}`, string(data))
	})

	t.Run("empty result serializes with empty dates_found array", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(pagedate.EmptyResult())
		require.NoError(t, err)

		assert.Contains(t, string(data), `"dates_found":[]`)
		assert.Contains(t, string(data), `"published_date":null`)
		assert.Contains(t, string(data), `"published_method":"not-found"`)
	})
}

func TestResult_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := &pagedate.Result{
		PublishedDate:   date(2019, time.January, 5),
		ModifiedDate:    date(2019, time.February, 1),
		PublishedMethod: pagedate.MethodVisibleText,
		ModifiedMethod:  pagedate.MethodUpdatePhrase,
		PublishedRaw:    "January 5, 2019",
		ModifiedRaw:     "2019-02-01",
		LastDateFound:   date(2019, time.February, 1),
		DatesFound:      []time.Time{date(2019, time.January, 5), date(2019, time.February, 1)},
		PubConfidence:   pagedate.ConfidenceMedium,
		ModConfidence:   pagedate.ConfidenceMedium,
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got pagedate.Result
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, orig, &got)
}

func TestConfig_Window(t *testing.T) {
	t.Parallel()

	t.Run("bounds come from floor year and reference clock", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
		cfg := pagedate.Config{
			FloorYear: 2000,
			ClockSkew: time.Hour,
			Now:       func() time.Time { return now },
		}

		min, max := cfg.Window()

		assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), min)
		assert.Equal(t, now.Add(time.Hour), max)
	})

	t.Run("rejects dates outside the window", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
		cfg := pagedate.Config{FloorYear: 2000, ClockSkew: time.Hour, Now: func() time.Time { return now }}

		assert.False(t, cfg.InWindow(date(1999, time.December, 31)))
		assert.False(t, cfg.InWindow(date(2031, time.January, 1)))
		assert.True(t, cfg.InWindow(date(2020, time.May, 1)))
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		t.Parallel()

		var cfg pagedate.Config
		min, _ := cfg.Window()

		assert.Equal(t, pagedate.DefaultFloorYear, min.Year())
	})
}
