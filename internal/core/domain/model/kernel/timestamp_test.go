package kernel_test

import (
	"encoding/json"
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("2024-01-10T10:30:00+04:00")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 6, 30, 0, 0, time.UTC), got)
	})

	t.Run("date only is midnight UTC", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("2024-01-10")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("date and time without zone", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("2024-01-10 15:04:05")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 15, 4, 5, 0, time.UTC), got)
	})

	t.Run("epoch milliseconds as string", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("1704844800000")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("compact date", func(t *testing.T) {
		got, err := kernel.ParseTimestamp("20240110")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("empty is required error", func(t *testing.T) {
		_, err := kernel.ParseTimestamp("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := kernel.ParseTimestamp("next tuesday")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseTimestamp_ISOWithoutZone(t *testing.T) {
	testCases := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2024-01-10T10:00:00", want: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-01-10T10:00:00.250", want: time.Date(2024, 1, 10, 10, 0, 0, 250_000_000, time.UTC)},
		{raw: "2024-01-10T10:00", want: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := kernel.ParseTimestamp(tc.raw)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTimestamp_RejectsInputWithoutDate(t *testing.T) {
	for _, raw := range []string{"12:30", "15", "12:30:45", "123456", "1-2"} {
		t.Run(raw, func(t *testing.T) {
			_, err := kernel.ParseTimestamp(raw)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	type payload struct {
		DeliveryDate kernel.Timestamp `json:"deliveryDate"`
	}

	testCases := []struct {
		name      string
		body      string
		wantValid bool
		wantTime  time.Time
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"deliveryDate":null}`},
		{name: "empty string", body: `{"deliveryDate":""}`},
		{
			name:      "datetime-local string",
			body:      `{"deliveryDate":"2024-01-10T18:45"}`,
			wantValid: true,
			wantTime:  time.Date(2024, 1, 10, 18, 45, 0, 0, time.UTC),
		},
		{
			name:      "iso string",
			body:      `{"deliveryDate":"2024-01-10T00:00:00Z"}`,
			wantValid: true,
			wantTime:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "epoch millis number",
			body:      `{"deliveryDate":1704844800000}`,
			wantValid: true,
			wantTime:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload

			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))

			assert.Equal(t, tc.wantValid, p.DeliveryDate.Valid)
			if tc.wantValid {
				assert.True(t, tc.wantTime.Equal(p.DeliveryDate.Time))
				require.NotNil(t, p.DeliveryDate.Ptr())
			} else {
				assert.Nil(t, p.DeliveryDate.Ptr())
			}
		})
	}

	t.Run("invalid string fails", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"deliveryDate":"soon"}`), &p)
		require.Error(t, err)
	})

	t.Run("boolean fails", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"deliveryDate":true}`), &p)
		require.Error(t, err)
	})
}
