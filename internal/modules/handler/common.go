package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
	"github.com/tpdc055/connectpng/internal/pkg/paging"
)

// respondErr maps service errors onto the HTTP error envelope.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(err.Error()))
	case errors.Is(err, service.ErrDuplicate), errors.Is(err, service.ErrAdminExists):
		c.JSON(http.StatusConflict, serializer.ConflictErr(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUserDisabled):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(err.Error()))
	case errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrUnknownRole),
		errors.Is(err, service.ErrUnknownReportType),
		errors.Is(err, service.ErrUnknownLookup),
		errors.Is(err, service.ErrUnknownFormat),
		errors.Is(err, paging.ErrInvalidCursor):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

// pathID parses the :id path parameter. On failure it writes a 400 and
// returns false.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid id", err))
		return uuid.Nil, false
	}
	return id, true
}

// optUUID parses an optional UUID query parameter.
func optUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseTime accepts RFC 3339 or a bare ISO date. dateOnly reports which
// form was given.
func parseTime(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err = time.Parse("2006-01-02", raw)
	return t, err == nil, err
}

// optTime parses an optional timestamp query parameter, accepting RFC 3339
// or a bare ISO date.
func optTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, _, err := parseTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// optEndTime parses an optional end-of-window query parameter. A bare ISO
// date is rounded up to the last instant of that day, so an inclusive
// endDate covers same-day records with later timestamps.
func optEndTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, dateOnly, err := parseTime(raw)
	if err != nil {
		return nil, err
	}
	if dateOnly {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

// dateRange builds the inclusive startDate/endDate window from the query.
func dateRange(c *gin.Context) (repo.DateRange, error) {
	start, err := optTime(c, "startDate")
	if err != nil {
		return repo.DateRange{}, err
	}
	end, err := optEndTime(c, "endDate")
	if err != nil {
		return repo.DateRange{}, err
	}
	return repo.DateRange{Start: start, End: end}, nil
}
