package helpers

import (
	"errors"
	"net/http"

	"plate-auction-web/internal/controller"
	"plate-auction-web/internal/plateerrors"
	"plate-auction-web/utils"

	"github.com/gin-gonic/gin"
)

// Notice keys carried in the listing view query string
const (
	NoticeBidSubmitted = "bid_submitted"
	NoticeSignedOut    = "signed_out"
)

// ListingFailureAlert is shown when the plate collection cannot be loaded
const ListingFailureAlert = "Plates could not be loaded right now. Please try again later."

// NoticeText maps a notice key to its message; unknown keys map to ""
func NoticeText(key string) string {
	switch key {
	case NoticeBidSubmitted:
		return controller.BidSuccessNotice
	case NoticeSignedOut:
		return "You have been signed out."
	default:
		return ""
	}
}

// HandleBindError renders page with a 400 and a generic alert for binding failures
func HandleBindError(c *gin.Context, handlerName, page string, data PageData, err error) {
	data.Alert = "The submitted form was incomplete."
	c.HTML(http.StatusBadRequest, page, data)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, plateerrors.ErrMissingSession):
		return http.StatusUnauthorized, "missing session"
	case errors.Is(err, plateerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "session rejected by auction service"
	case errors.Is(err, plateerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, plateerrors.ErrPlateNotFound):
		return http.StatusNotFound, "plate not found"
	case errors.Is(err, plateerrors.ErrSubmitting),
		errors.Is(err, plateerrors.ErrBidTooLow),
		errors.Is(err, plateerrors.ErrAlreadyBid),
		errors.Is(err, plateerrors.ErrPlateInactive):
		return http.StatusConflict, "bid rejected"
	case errors.Is(err, plateerrors.ErrUpstream):
		return http.StatusBadGateway, "auction service error"
	case errors.Is(err, plateerrors.ErrTransport):
		return http.StatusBadGateway, "auction service unreachable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
