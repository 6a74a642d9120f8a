package rest

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/application"
	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/gofiber/fiber/v2"
)

const dateOnly = "2006-01-02"

var (
	errNotAnInteger   = errors.New("must be an integer")
	errPageSizeTooBig = errors.New("exceeds the maximum page size")
	errBadTime        = errors.New("must be RFC3339 or YYYY-MM-DD")
)

// parseBound reads an RFC3339 instant or a date. A date used as upper bound covers the whole day.
func parseBound(raw string, upper bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return nil, errBadTime
	}
	if upper {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(key, errNotAnInteger)
	}
	return v, nil
}

// parsePageQuery maps query string parameters onto one criteria field each
func (h *DashboardHandler) parsePageQuery(c *fiber.Ctx) (application.PageQuery, error) {
	from, err := parseBound(c.Query("from"), false)
	if err != nil {
		return application.PageQuery{}, domain.NewValidationError("from", err)
	}
	to, err := parseBound(c.Query("to"), true)
	if err != nil {
		return application.PageQuery{}, domain.NewValidationError("to", err)
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		return application.PageQuery{}, err
	}
	pageSize, err := queryInt(c, "page_size", h.defaultPageSize)
	if err != nil {
		return application.PageQuery{}, err
	}
	if pageSize > h.maxPageSize {
		return application.PageQuery{}, domain.NewValidationError("page_size", fmt.Errorf("%w (%d)", errPageSizeTooBig, h.maxPageSize))
	}

	return application.PageQuery{
		Criteria: domain.FilterCriteria{
			Type:   c.Query("type"),
			Status: c.Query("status"),
			Tab:    domain.Tab(c.Query("tab")),
			From:   from,
			To:     to,
		},
		Page:     page,
		PageSize: pageSize,
	}, nil
}
