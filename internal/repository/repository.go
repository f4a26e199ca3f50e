package repository

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"plate-auction-web/internal/models"
	"plate-auction-web/internal/plateerrors"
	"plate-auction-web/utils"
)

// Plate is a plate offered for auction by the in-memory backend
type Plate struct {
	ID          int64
	PlateNumber string
	Description string
	Deadline    time.Time
	Active      bool
}

// MemoryRepo is a concurrency-safe in-memory auction backend.
// It satisfies auction.Service so the front end can run without the remote API.
type MemoryRepo struct {
	mu     sync.RWMutex
	plates map[int64]Plate           // key: plateID -> value: plate
	bids   map[int64][]models.Bid    // key: plateID -> value: list of bids
	bidder map[string]map[int64]bool // key: token -> value: plates bid on
	now    func() time.Time
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		plates: make(map[int64]Plate),
		bids:   make(map[int64][]models.Bid),
		bidder: make(map[string]map[int64]bool),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// AddPlate adds or replaces a plate
func (r *MemoryRepo) AddPlate(plate Plate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plates[plate.ID] = plate
}

// ListPlates returns active plates ordered by id with their current highest bid
func (r *MemoryRepo) ListPlates(ctx context.Context, token string) ([]models.PlateListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list plates: %w: %w", plateerrors.ErrTransport, err)
	}
	if token == "" {
		return nil, fmt.Errorf("list plates: %w", plateerrors.ErrUnauthorized)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]models.PlateListing, 0, len(r.plates))
	for _, p := range r.plates {
		if !p.Active {
			continue
		}
		active := p.Active
		listing := models.PlateListing{
			ID:          p.ID,
			PlateNumber: p.PlateNumber,
			Description: p.Description,
			IsActive:    &active,
		}
		if !p.Deadline.IsZero() {
			listing.Deadline = p.Deadline.UTC().Format(time.RFC3339)
		}
		if highest, ok := r.highestLocked(p.ID); ok {
			amount := highest.Amount
			listing.HighestBid = &amount
		}
		listings = append(listings, listing)
	}

	sort.Slice(listings, func(i, j int) bool { return listings[i].ID < listings[j].ID })
	return listings, nil
}

// SubmitBid records a bid if it beats the current highest bid before the deadline.
// Each token may bid on a plate once.
func (r *MemoryRepo) SubmitBid(ctx context.Context, token string, bid models.BidRequest) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("submit bid for plate %d: %w: %w", bid.PlateID, plateerrors.ErrTransport, err)
	}
	if token == "" {
		return fmt.Errorf("submit bid for plate %d: %w", bid.PlateID, plateerrors.ErrUnauthorized)
	}
	amount, err := bid.Amount.Float64()
	if err != nil || amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("submit bid for plate %d: %w - amount %q", bid.PlateID, plateerrors.ErrInvalidBid, bid.Amount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	plate, ok := r.plates[bid.PlateID]
	if !ok {
		return fmt.Errorf("submit bid for plate %d: %w", bid.PlateID, plateerrors.ErrPlateNotFound)
	}

	now := r.now()
	if !plate.Active || (!plate.Deadline.IsZero() && plate.Deadline.Before(now)) {
		return fmt.Errorf("submit bid for plate %d: %w", bid.PlateID, plateerrors.ErrPlateInactive)
	}

	if highest, ok := r.highestLocked(bid.PlateID); ok && amount <= highest.Amount {
		return fmt.Errorf("submit bid for plate %d: %w - current highest bid is %.2f", bid.PlateID, plateerrors.ErrBidTooLow, highest.Amount)
	}

	if r.bidder[token][bid.PlateID] {
		return fmt.Errorf("submit bid for plate %d: %w", bid.PlateID, plateerrors.ErrAlreadyBid)
	}

	r.bids[bid.PlateID] = append(r.bids[bid.PlateID], models.Bid{
		BidID:     utils.GenerateID(),
		PlateID:   bid.PlateID,
		Bidder:    token,
		Amount:    amount,
		CreatedAt: now,
	})
	if r.bidder[token] == nil {
		r.bidder[token] = make(map[int64]bool)
	}
	r.bidder[token][bid.PlateID] = true

	return nil
}

// GetBidsByPlate returns a copy of all bids recorded for a plate
func (r *MemoryRepo) GetBidsByPlate(plateID int64) []models.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Bid(nil), r.bids[plateID]...)
}

// highestLocked returns the highest bid for a plate; ties go to the earliest bid.
// Callers must hold r.mu.
func (r *MemoryRepo) highestLocked(plateID int64) (models.Bid, bool) {
	bids := r.bids[plateID]
	if len(bids) == 0 {
		return models.Bid{}, false
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, true
}
