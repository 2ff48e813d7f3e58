package booking

import (
	"math/rand"
	"strconv"
	"time"
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newBookingReference builds an opaque human-quotable identifier: the prefix,
// the last eight digits of the current unix-millisecond timestamp, and four
// random upper base36 characters.
func newBookingReference(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return prefix + ts + string(suffix)
}
