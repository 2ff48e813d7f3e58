package pricing

import (
	"errors"
	"math"
	"time"

	"hillescape/config"
	"hillescape/models"
)

// ErrInvalidDateRange is returned when check-out is not after check-in and
// single-night coercion is disabled.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// QuoteInput carries everything needed to price a stay.
type QuoteInput struct {
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	Rooms       int
	NightlyRate float64
}

// Options holds the pricing constants. They are configuration, not code:
// use DefaultOptions for the configured values.
type Options struct {
	TaxRate            float64
	ExtraAdultRate     float64
	MaxAdultsPerRoom   int
	DefaultNightlyRate float64
	// CoerceInvalidDates treats an inverted or empty date range as a
	// one-night stay instead of rejecting it.
	CoerceInvalidDates bool
}

// DefaultOptions returns the pricing constants from application config.
func DefaultOptions() Options {
	return Options{
		TaxRate:            config.AppConfig.TaxRate,
		ExtraAdultRate:     config.AppConfig.ExtraAdultRate,
		MaxAdultsPerRoom:   config.AppConfig.MaxAdultsPerRoom,
		DefaultNightlyRate: config.AppConfig.DefaultNightlyRate,
		CoerceInvalidDates: config.AppConfig.CoerceInvalidDates,
	}
}

// Quote computes the itemized price of a stay. It is deterministic and has no
// side effects. Rounding is half away from zero throughout; the room and
// surcharge components are rounded first and the rounded values form the
// subtotal the tax is derived from.
func Quote(in QuoteInput, opts Options) (models.PriceBreakdown, error) {
	nights, err := stayNights(in.CheckIn, in.CheckOut, opts.CoerceInvalidDates)
	if err != nil {
		return models.PriceBreakdown{}, err
	}

	rooms := in.Rooms
	if rooms <= 0 {
		rooms = 1
	}
	adults := in.Adults
	if adults <= 0 {
		adults = 2
	}
	rate := in.NightlyRate
	if rate <= 0 {
		rate = opts.DefaultNightlyRate
	}

	roomCost := math.Round(rate * float64(rooms) * float64(nights))

	adultsPerRoom := int(math.Ceil(float64(adults) / float64(rooms)))
	extraAdultsPerRoom := adultsPerRoom - opts.MaxAdultsPerRoom
	if extraAdultsPerRoom < 0 {
		extraAdultsPerRoom = 0
	}
	extraCharge := 0.0
	if extraAdultsPerRoom > 0 {
		extraCharge = math.Round(float64(extraAdultsPerRoom) * opts.ExtraAdultRate * float64(nights) * float64(rooms))
	}

	subtotal := roomCost + extraCharge
	taxRaw := subtotal * opts.TaxRate

	return models.PriceBreakdown{
		Nights:            nights,
		Rooms:             rooms,
		BasePrice:         roomCost,
		ExtraAdultsCharge: extraCharge,
		Subtotal:          subtotal,
		TaxAmount:         math.Round(taxRaw),
		TotalAmount:       math.Round(subtotal + taxRaw),
	}, nil
}

// stayNights derives the billable night count from the stay dates.
func stayNights(checkIn, checkOut time.Time, coerce bool) (int, error) {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		if !coerce {
			return 0, ErrInvalidDateRange
		}
		nights = 1
	}
	return nights, nil
}
