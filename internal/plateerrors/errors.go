package plateerrors

import "errors"

// Session and transport errors seen by the page controllers
var (
	ErrMissingSession = errors.New("missing session token")
	ErrUnauthorized   = errors.New("auction service rejected the session")
	ErrUpstream       = errors.New("auction service returned an error")
	ErrTransport      = errors.New("auction service unreachable")
	ErrSubmitting     = errors.New("bid submission already in progress")
)

// bid errors
var (
	ErrInvalidBid    = errors.New("invalid bid")
	ErrPlateNotFound = errors.New("plate not found")
	ErrPlateInactive = errors.New("bidding closed for plate")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrAlreadyBid    = errors.New("bidder already placed a bid on plate")
)
