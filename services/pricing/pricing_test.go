package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		TaxRate:            0.18,
		ExtraAdultRate:     800,
		MaxAdultsPerRoom:   2,
		DefaultNightlyRate: 2603,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuoteTwoNightStay(t *testing.T) {
	got, err := Quote(QuoteInput{
		CheckIn:     day("2024-01-01"),
		CheckOut:    day("2024-01-03"),
		Adults:      2,
		Rooms:       1,
		NightlyRate: 2603,
	}, testOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, got.Nights)
	assert.Equal(t, 1, got.Rooms)
	assert.Equal(t, 5206.0, got.BasePrice)
	assert.Equal(t, 0.0, got.ExtraAdultsCharge)
	assert.Equal(t, 5206.0, got.Subtotal)
	assert.Equal(t, 937.0, got.TaxAmount)
	assert.Equal(t, 6143.0, got.TotalAmount)
}

func TestQuoteExtraAdultSurcharge(t *testing.T) {
	// 5 adults in 1 room: ceil(5/1)=5 per room, 3 over the cap.
	got, err := Quote(QuoteInput{
		CheckIn:     day("2024-01-01"),
		CheckOut:    day("2024-01-03"),
		Adults:      5,
		Rooms:       1,
		NightlyRate: 2603,
	}, testOptions())
	require.NoError(t, err)

	assert.Equal(t, 4800.0, got.ExtraAdultsCharge) // 3 * 800 * 2 nights * 1 room
	assert.Equal(t, 10006.0, got.Subtotal)
	assert.Equal(t, 1801.0, got.TaxAmount)
	assert.Equal(t, 11807.0, got.TotalAmount)
}

func TestQuoteSurchargeSpreadsAcrossRooms(t *testing.T) {
	// 5 adults in 2 rooms: ceil(5/2)=3 per room, 1 over the cap, charged
	// per room.
	got, err := Quote(QuoteInput{
		CheckIn:     day("2024-01-01"),
		CheckOut:    day("2024-01-02"),
		Adults:      5,
		Rooms:       2,
		NightlyRate: 1000,
	}, testOptions())
	require.NoError(t, err)

	assert.Equal(t, 2000.0, got.BasePrice)
	assert.Equal(t, 1600.0, got.ExtraAdultsCharge) // 1 * 800 * 1 night * 2 rooms
}

func TestQuoteDefaults(t *testing.T) {
	// Zero rooms, adults, and rate fall back to 1 room, 2 adults, the
	// default nightly rate.
	got, err := Quote(QuoteInput{
		CheckIn:  day("2024-06-10"),
		CheckOut: day("2024-06-11"),
	}, testOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, got.Nights)
	assert.Equal(t, 1, got.Rooms)
	assert.Equal(t, 2603.0, got.BasePrice)
	assert.Equal(t, 0.0, got.ExtraAdultsCharge)
}

func TestQuotePartialDayRoundsUp(t *testing.T) {
	in := QuoteInput{
		CheckIn:     day("2024-01-01"),
		CheckOut:    day("2024-01-03").Add(6 * time.Hour),
		Adults:      2,
		Rooms:       1,
		NightlyRate: 1000,
	}
	got, err := Quote(in, testOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, got.Nights)
}

func TestQuoteRejectsInvertedRange(t *testing.T) {
	_, err := Quote(QuoteInput{
		CheckIn:     day("2024-01-03"),
		CheckOut:    day("2024-01-01"),
		Adults:      2,
		Rooms:       1,
		NightlyRate: 1000,
	}, testOptions())
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestQuoteRejectsZeroNightRange(t *testing.T) {
	_, err := Quote(QuoteInput{
		CheckIn:     day("2024-01-01"),
		CheckOut:    day("2024-01-01"),
		Adults:      2,
		Rooms:       1,
		NightlyRate: 1000,
	}, testOptions())
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestQuoteCoercesInvalidRangeWhenEnabled(t *testing.T) {
	opts := testOptions()
	opts.CoerceInvalidDates = true

	got, err := Quote(QuoteInput{
		CheckIn:     day("2024-01-03"),
		CheckOut:    day("2024-01-01"),
		Adults:      2,
		Rooms:       1,
		NightlyRate: 1000,
	}, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Nights)
	assert.Equal(t, 1000.0, got.BasePrice)
}

func TestQuoteIsDeterministic(t *testing.T) {
	in := QuoteInput{
		CheckIn:     day("2024-03-05"),
		CheckOut:    day("2024-03-09"),
		Adults:      3,
		Rooms:       1,
		NightlyRate: 4800,
	}
	first, err := Quote(in, testOptions())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Quote(in, testOptions())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuoteInvariants(t *testing.T) {
	cases := []QuoteInput{
		{CheckIn: day("2024-01-01"), CheckOut: day("2024-01-02"), Adults: 1, Rooms: 1, NightlyRate: 999.5},
		{CheckIn: day("2024-01-01"), CheckOut: day("2024-01-08"), Adults: 6, Rooms: 2, NightlyRate: 2982},
		{CheckIn: day("2024-01-01"), CheckOut: day("2024-02-01"), Adults: 10, Rooms: 3, NightlyRate: 5500},
	}
	for _, in := range cases {
		got, err := Quote(in, testOptions())
		require.NoError(t, err)
		assert.Equal(t, got.Subtotal, got.BasePrice+got.ExtraAdultsCharge)
		assert.GreaterOrEqual(t, got.TotalAmount, got.Subtotal)
		assert.Equal(t, got.TaxAmount, float64(int64(got.TaxAmount)))
		assert.Equal(t, got.TotalAmount, float64(int64(got.TotalAmount)))
	}
}
