package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tuanemuy/okr-manager-sub001/internal/errors"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
)

// respondServiceError translates service-layer errors into the API error
// envelope. Unrecognized errors are treated as repository failures and
// reported without their cause.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		apierrors.ValidationFailed(c, validationErr.Field, validationErr.Message)

	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrNotInvitee):
		apierrors.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrOkrNotFound),
		errors.Is(err, services.ErrKeyResultNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvitationPending),
		errors.Is(err, services.ErrInvitationNotPending),
		errors.Is(err, services.ErrLastAdmin),
		errors.Is(err, services.ErrTeamNotEmpty),
		errors.Is(err, services.ErrKeyResultLimit):
		apierrors.Conflict(c, err.Error())

	default:
		apierrors.InternalError(c, "")
	}
}
