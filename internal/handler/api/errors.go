package api

import (
	"errors"
	"net/http"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/domain/review"
	"stable-booking/internal/domain/slot"
	"stable-booking/internal/handler/httperr"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
}

var useCaseErrors = []errorMapping{
	{errs.ErrUnauthorized, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},

	{errs.ErrStableNotFound, http.StatusNotFound},
	{errs.ErrHorseNotFound, http.StatusNotFound},
	{errs.ErrBookingNotFound, http.StatusNotFound},
	{errs.ErrRiderNotFound, http.StatusNotFound},

	{errs.ErrBookingConflict, http.StatusConflict},
	{errs.ErrSessionCapReached, http.StatusConflict},
	{errs.ErrDuplicateReview, http.StatusConflict},

	{errs.ErrSlotUnavailable, http.StatusBadRequest},
	{errs.ErrSlotInPast, http.StatusBadRequest},
	{errs.ErrInsufficientLeadTime, http.StatusBadRequest},
	{errs.ErrHorseInactive, http.StatusBadRequest},
	{errs.ErrInvalidTransition, http.StatusBadRequest},
	{errs.ErrBookingCancelled, http.StatusBadRequest},
	{errs.ErrRideNotStarted, http.StatusBadRequest},
	{errs.ErrAlreadyScored, http.StatusBadRequest},
	{errs.ErrBookingNotCompleted, http.StatusBadRequest},
	{errs.ErrDomainValidation, http.StatusBadRequest},
	{slot.ErrInvalidDate, http.StatusBadRequest},
	{slot.ErrInvalidTimeRange, http.StatusBadRequest},
	{rating.ErrScoreOutOfRange, http.StatusBadRequest},
	{rating.ErrInvalidTier, http.StatusBadRequest},
	{rating.ErrHorseTierMissing, http.StatusBadRequest},
	{review.ErrInvalidRating, http.StatusBadRequest},
	{review.ErrCommentTooLong, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
}

// abortWithUseCaseError answers with the status mapped to err. Unknown errors
// are reported as 500 without leaking their text.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range useCaseErrors {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.target.Error(), detailFor(err, m.target))
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// detailFor exposes the wrapped message when it adds context to the sentinel.
func detailFor(err, target error) any {
	if err.Error() == target.Error() {
		return nil
	}
	return err.Error()
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
