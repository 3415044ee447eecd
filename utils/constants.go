// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "availability:"

// DateLayout is the calendar-date format used across stores and the API.
const DateLayout = "2006-01-02"

// DefaultAvailabilityCacheTTL is the fallback TTL for cached week availability.
const DefaultAvailabilityCacheTTL = 60 * time.Second
