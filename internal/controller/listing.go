package controller

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/models"
	"plate-auction-web/internal/plateerrors"
	"plate-auction-web/internal/session"
)

// NoBidPlaceholder is shown instead of an amount when a plate has no bids
const NoBidPlaceholder = "No bids yet"

// Card is the display data for one plate listing
type Card struct {
	PlateID     int64
	Title       string
	Description string
	HighestBid  string
	HasBid      bool
	Deadline    string
	BidURL      string
}

// ListingView is the result of loading the listing page
type ListingView struct {
	Outcome Outcome
	Cards   []Card
	Err     error
}

// ListingRenderer loads plate listings and turns them into cards
type ListingRenderer struct {
	service auction.Service
	token   session.Token
}

// NewListingRenderer creates a renderer bound to one session
func NewListingRenderer(service auction.Service, token session.Token) *ListingRenderer {
	return &ListingRenderer{service: service, token: token}
}

// Load fetches the listing collection once and builds one card per listing.
// Without a session it asks for the login view and makes no request.
func (r *ListingRenderer) Load(ctx context.Context) ListingView {
	if !r.token.Present() {
		return ListingView{Outcome: OutcomeLogin, Err: plateerrors.ErrMissingSession}
	}

	plates, err := r.service.ListPlates(ctx, string(r.token))
	if err != nil {
		return ListingView{
			Outcome: OutcomeFailed,
			Cards:   []Card{},
			Err:     fmt.Errorf("listing: %w", err),
		}
	}

	cards := make([]Card, 0, len(plates))
	for _, p := range plates {
		cards = append(cards, NewCard(p))
	}
	return ListingView{Outcome: OutcomeRendered, Cards: cards}
}

// NewCard builds the card for a single listing
func NewCard(p models.PlateListing) Card {
	card := Card{
		PlateID:     p.ID,
		Title:       p.PlateNumber,
		Description: p.Description,
		HighestBid:  NoBidPlaceholder,
		Deadline:    p.Deadline,
		BidURL:      BidURL(p.ID),
	}
	if card.Title == "" {
		card.Title = "Plate #" + strconv.FormatInt(p.ID, 10)
	}
	// a zero highest bid counts as no bid
	if p.HighestBid != nil && *p.HighestBid > 0 {
		card.HighestBid = strconv.FormatFloat(*p.HighestBid, 'f', 2, 64)
		card.HasBid = true
	}
	return card
}

// BidURL is the bid view address for a plate
func BidURL(plateID int64) string {
	q := url.Values{}
	q.Set("plate_id", strconv.FormatInt(plateID, 10))
	return "/bid?" + q.Encode()
}
