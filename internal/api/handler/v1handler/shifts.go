package v1handler

import (
	"net/http"
	"net/url"
	"shifts/internal/eligibility"
	"shifts/pkg/domain"
	"shifts/pkg/logger"
	"shifts/pkg/serrors"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// AvailableShifts serves the page of shifts a worker is eligible to claim at a
// facility within a date range. It returns the written status code.
func (h *Handler) AvailableShifts(w http.ResponseWriter, r *http.Request) int {
	ctx := r.Context()

	res, err := h.availableShifts(r)
	if err != nil {
		return h.writeError(w, r, err)
	}

	if err := writeJSON(w, http.StatusOK, func(enc *jx.Encoder) { encodeShifts(enc, res) }); err != nil {
		logger.Warn(ctx, "could not write available shifts", zap.Error(err))
	}

	return http.StatusOK
}

func (h *Handler) availableShifts(r *http.Request) (eligibility.Shifts, error) {
	q := r.URL.Query()

	facilityID, err := requiredID(q, "facilityId")
	if err != nil {
		return eligibility.Shifts{}, err
	}
	workerID, err := requiredID(q, "workerId")
	if err != nil {
		return eligibility.Shifts{}, err
	}
	startDate, err := requiredString(q, "startDate")
	if err != nil {
		return eligibility.Shifts{}, err
	}
	endDate, err := requiredString(q, "endDate")
	if err != nil {
		return eligibility.Shifts{}, err
	}
	page, err := optionalInt(q, "page")
	if err != nil {
		return eligibility.Shifts{}, err
	}
	pageSize, err := optionalInt(q, "pageSize")
	if err != nil {
		return eligibility.Shifts{}, err
	}

	return h.deps.Eligibility.FindEligibleShifts(r.Context(), //nolint: wrapcheck
		domain.FacilityID(facilityID),
		domain.WorkerID(workerID),
		startDate, endDate,
		domain.Pagination{Page: page, PageSize: pageSize})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) int {
	res := h.NewError(r.Context(), err)
	if err := writeJSON(w, res.StatusCode, res.Response.Encode); err != nil {
		logger.Warn(r.Context(), "could not write error response", zap.Error(err))
	}

	return res.StatusCode
}

func requiredString(q url.Values, name string) (string, error) {
	v := q.Get(name)
	if v == "" {
		return "", serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}

	return v, nil
}

func requiredID(q url.Values, name string) (int64, error) {
	v, err := requiredString(q, name)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 1 {
		if err == nil {
			err = errors.Errorf("%d is not positive", id)
		}

		return 0, serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, name), "%s must be a positive integer", name)
	}

	return id, nil
}

// optionalInt returns 0 when the parameter is absent.
func optionalInt(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, name), "%s must be an integer", name)
	}
	if n < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be greater than or equal to 1", name)
	}

	return n, nil
}
