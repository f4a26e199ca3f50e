package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/models"
	"plate-auction-web/internal/plateerrors"
	"plate-auction-web/internal/session"
)

// User-facing messages of the bid view
const (
	BidSuccessNotice = "Bid submitted successfully!"
	BidFailureAlert  = "Something went wrong while submitting your bid."
	InvalidBidAlert  = "Please enter a valid plate and a positive bid amount."
)

// State of a BidSubmitter
type State int32

const (
	StateIdle State = iota
	StateSubmitting
)

// BidForm holds the raw form fields of the bid view
type BidForm struct {
	PlateID string
	Amount  string
}

// BidView is the result of showing or submitting the bid form
type BidView struct {
	Outcome Outcome
	PlateID string
	Amount  string
	Alert   string
	Err     error
}

// BidSubmitter drives the bid form for one session
type BidSubmitter struct {
	service auction.Service
	token   session.Token
	state   atomic.Int32
}

// NewBidSubmitter creates a submitter bound to one session
func NewBidSubmitter(service auction.Service, token session.Token) *BidSubmitter {
	return &BidSubmitter{service: service, token: token}
}

// State returns the current state
func (b *BidSubmitter) State() State {
	return State(b.state.Load())
}

// Prepare shows the idle form with the plate id taken from the URL
func (b *BidSubmitter) Prepare(plateIDParam string) BidView {
	if !b.token.Present() {
		return BidView{Outcome: OutcomeLogin, Err: plateerrors.ErrMissingSession}
	}
	return BidView{Outcome: OutcomeRendered, PlateID: plateIDParam}
}

// Submit posts the bid once. Any failure returns the form with a generic alert;
// nothing is retried.
func (b *BidSubmitter) Submit(ctx context.Context, form BidForm) BidView {
	if !b.token.Present() {
		return BidView{Outcome: OutcomeLogin, Err: plateerrors.ErrMissingSession}
	}

	failed := BidView{Outcome: OutcomeFailed, PlateID: form.PlateID, Amount: form.Amount}

	bid, err := ParseBid(form)
	if err != nil {
		failed.Alert = InvalidBidAlert
		failed.Err = err
		return failed
	}

	if !b.state.CompareAndSwap(int32(StateIdle), int32(StateSubmitting)) {
		failed.Alert = BidFailureAlert
		failed.Err = plateerrors.ErrSubmitting
		return failed
	}
	defer b.state.Store(int32(StateIdle))

	if err := b.service.SubmitBid(ctx, string(b.token), bid); err != nil {
		failed.Alert = BidFailureAlert
		failed.Err = fmt.Errorf("bid on plate %d: %w", bid.PlateID, err)
		return failed
	}

	return BidView{Outcome: OutcomeListing, PlateID: form.PlateID, Amount: form.Amount}
}

// ParseBid validates the raw form fields into a BidRequest
func ParseBid(form BidForm) (models.BidRequest, error) {
	plateID, err := strconv.ParseInt(strings.TrimSpace(form.PlateID), 10, 64)
	if err != nil || plateID <= 0 {
		return models.BidRequest{}, fmt.Errorf("%w - plate id %q", plateerrors.ErrInvalidBid, form.PlateID)
	}

	text := strings.TrimSpace(form.Amount)
	if !isDecimal(text) {
		return models.BidRequest{}, fmt.Errorf("%w - amount %q", plateerrors.ErrInvalidBid, form.Amount)
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || amount <= 0 || math.IsInf(amount, 0) {
		return models.BidRequest{}, fmt.Errorf("%w - amount %q", plateerrors.ErrInvalidBid, form.Amount)
	}

	return models.BidRequest{PlateID: plateID, Amount: json.Number(text)}, nil
}

// isDecimal reports whether s is an unsigned JSON number literal
func isDecimal(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9' && json.Valid([]byte(s))
}
