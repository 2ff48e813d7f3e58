package booking

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingReferenceShape(t *testing.T) {
	ref := newBookingReference("HILL")

	require.Len(t, ref, 16)
	assert.True(t, strings.HasPrefix(ref, "HILL"))

	for _, c := range ref[4:12] {
		assert.True(t, c >= '0' && c <= '9', "timestamp segment: %s", ref)
	}
	for _, c := range ref[12:] {
		assert.Contains(t, referenceAlphabet, string(c), "random segment: %s", ref)
	}
}

func TestNewBookingReferenceEmbedsClock(t *testing.T) {
	before := time.Now().UnixMilli()
	ref := newBookingReference("HILL")
	after := time.Now().UnixMilli()

	segment := ref[4:12]
	matched := false
	for ms := before; ms <= after; ms++ {
		s := strconv.FormatInt(ms, 10)
		if s[len(s)-8:] == segment {
			matched = true
			break
		}
	}
	assert.True(t, matched, "timestamp segment %s not minted between readings", segment)
}

func TestNewBookingReferenceDistribution(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[newBookingReference("HILL")] = true
	}
	// Four random base36 characters give ~1.7M combinations; heavy
	// collisions across 200 draws would point at a broken generator.
	assert.Greater(t, len(seen), 190)
}
