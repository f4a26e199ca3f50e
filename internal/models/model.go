package models

import (
	"encoding/json"
	"time"
)

// PlateListing is a license plate up for auction, as returned by the auction service
type PlateListing struct {
	ID          int64    `json:"id"`
	PlateNumber string   `json:"plate_number"`
	Description string   `json:"description"`
	HighestBid  *float64 `json:"highest_bid,omitempty"`
	Deadline    string   `json:"deadline,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// BidRequest is a single bid submission. Only the amount travels in the body;
// the plate id is part of the request path. Amount keeps the decimal text as
// the bidder typed it and is sent as a JSON string.
type BidRequest struct {
	PlateID int64       `json:"-"`
	Amount  json.Number `json:"amount,string"`
}

// Bid is a bid accepted by the in-memory auction backend
type Bid struct {
	BidID     string    `json:"bid_id"`
	PlateID   int64     `json:"plate_id"`
	Bidder    string    `json:"-"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
