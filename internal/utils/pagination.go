// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// The backend pages lists with a single ?limit= parameter (no page/offset).
const (
	DefaultHistoryLimit = 50
	DefaultFeedLimit    = 20
	MaxLimit            = 100
)

// ParseLimitParam reads ?limit=, falling back to def when it is missing or not a
// positive number, and capping it at MaxLimit.
func ParseLimitParam(c *fiber.Ctx, def int) int {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return def
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		zlog.Warn().Str("query_param", "limit").Str("value", limitStr).Int("default", def).Msg("Invalid 'limit' query parameter, using default")
		return def
	}
	if limit > MaxLimit {
		zlog.Warn().Int("requested", limit).Int("max", MaxLimit).Msg("Requested 'limit' exceeds maximum, using max limit")
		return MaxLimit
	}
	return limit
}

// Take returns at most limit items from the front of items.
func Take[T any](items []T, limit int) []T {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
