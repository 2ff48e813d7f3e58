// File: utils/constants.go
package utils

import "time"

// ResortCachePrefix is the prefix used for Redis resort listing cache keys.
const ResortCachePrefix = "resorts:"

// ResortCacheTTL is the time-to-live for cached resort listings.
const ResortCacheTTL = 5 * time.Minute

// SenderTokenPrefix is the prefix used for stored sender credential keys.
const SenderTokenPrefix = "sender:"
