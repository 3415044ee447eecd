package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"medisys/models"
	"medisys/services/availability"
	"medisys/utils"
)

// AvailabilityHandler serves the computed week grid. Caching lives here,
// at the consuming layer: the engine itself always computes fresh.
type AvailabilityHandler struct {
	Svc      availability.Service
	Cache    *redis.Client
	CacheTTL time.Duration
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service, cache *redis.Client, ttl time.Duration) *AvailabilityHandler {
	if ttl <= 0 {
		ttl = utils.DefaultAvailabilityCacheTTL
	}
	return &AvailabilityHandler{Svc: svc, Cache: cache, CacheTTL: ttl}
}

// availabilityCacheKey identifies one doctor+branch+week view.
func availabilityCacheKey(doctorID, branchID, weekStart string) string {
	return fmt.Sprintf("%s%s:%s:%s", utils.AvailabilityCachePrefix, doctorID, branchID, weekStart)
}

// GetWeekAvailabilityHandler handles
// GET /api/availability/:doctorId?branchId=...&week=YYYY-MM-DD&offset=N.
// week may be any day of the desired week; offset shifts by whole weeks.
func (h *AvailabilityHandler) GetWeekAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	branchID := c.Query("branchId")
	if branchID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "branchId query parameter is required")
		return
	}

	ref := time.Now()
	if week := c.Query("week"); week != "" {
		parsed, err := time.Parse(utils.DateLayout, week)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", fmt.Sprintf("invalid week date %q, expected YYYY-MM-DD", week))
			return
		}
		ref = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", fmt.Sprintf("invalid offset %q", raw))
			return
		}
		offset = parsed
	}

	window := availability.WeekOf(ref).Shift(offset)
	key := availabilityCacheKey(doctorID, branchID, window.Start.Format(utils.DateLayout))

	ctx := c.Request.Context()
	if cached, err := h.Cache.Get(ctx, key).Result(); err == nil {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	week, err := h.Svc.GetWeekAvailability(ctx, doctorID, branchID, ref, offset)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute availability", err.Error())
		return
	}

	if data, err := json.Marshal(week); err == nil {
		if err := h.Cache.Set(ctx, key, data, h.CacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability", zap.String("key", key), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, week)
}

// invalidateAvailability drops the cached week view covering the given
// booking; the next read recomputes it.
func invalidateAvailability(ctx context.Context, cache *redis.Client, bk *models.Booking) {
	date, err := time.Parse(utils.DateLayout, bk.Date)
	if err != nil {
		return
	}
	weekStart := availability.WeekOf(date).Start.Format(utils.DateLayout)
	key := availabilityCacheKey(bk.DoctorID, bk.BranchID, weekStart)
	if err := cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.String("key", key), zap.Error(err))
	}
}
