package helpers

import "plate-auction-web/internal/controller"

// Request DTOs
type BidFormRequest struct {
	PlateID string `form:"plate_id"`
	Amount  string `form:"amount"`
}

type LoginRequest struct {
	Token string `form:"token" binding:"required"`
}

// PageData is what every page template renders
type PageData struct {
	Title    string
	LoggedIn bool
	Notice   string
	Alert    string
	Cards    []controller.Card
	PlateID  string
	Amount   string
}
