package handler

import (
	"errors"
	"net/http"
	"net/url"
	"sync"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/controller"
	"plate-auction-web/internal/session"
	"plate-auction-web/services/web/helpers"
	"plate-auction-web/services/web/views"
	"plate-auction-web/utils"

	"github.com/gin-gonic/gin"
)

// Navigation targets
const (
	LoginPath   = "/login"
	ListingPath = "/plates"
	BidPath     = "/bid"
)

var errBlankToken = errors.New("token is blank")

type PagesHandler struct {
	service  auction.Service
	sessions *session.Store

	mu         sync.Mutex
	submitters map[session.Token]*sharedSubmitter // key: session token -> submitter in use
}

// sharedSubmitter is the bid submitter of one session, kept while any request uses it
type sharedSubmitter struct {
	submitter *controller.BidSubmitter
	refs      int
}

func NewPagesHandler(service auction.Service, sessions *session.Store) *PagesHandler {
	return &PagesHandler{
		service:    service,
		sessions:   sessions,
		submitters: make(map[session.Token]*sharedSubmitter),
	}
}

// acquireSubmitter returns the submitter shared by all in-flight requests of a session.
// The returned release func must be called once the request is done with it.
func (h *PagesHandler) acquireSubmitter(token session.Token) (*controller.BidSubmitter, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	shared, ok := h.submitters[token]
	if !ok {
		shared = &sharedSubmitter{submitter: controller.NewBidSubmitter(h.service, token)}
		h.submitters[token] = shared
	}
	shared.refs++

	return shared.submitter, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		shared.refs--
		if shared.refs == 0 {
			delete(h.submitters, token)
		}
	}
}

// activeSubmitters reports how many sessions currently hold a submitter
func (h *PagesHandler) activeSubmitters() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.submitters)
}

// ListingPageHandler handles GET /plates
func (h *PagesHandler) ListingPageHandler(c *gin.Context) {
	token := h.sessions.Read(c.Request)
	view := controller.NewListingRenderer(h.service, token).Load(c.Request.Context())

	switch view.Outcome {
	case controller.OutcomeLogin:
		utils.Info("ListingPageHandler: no session, redirecting to login", map[string]any{"path": c.Request.URL.Path})
		c.Redirect(http.StatusFound, LoginPath)
		return
	case controller.OutcomeFailed:
		status, message := helpers.MapErrorToHTTP(view.Err)
		c.HTML(status, views.ListingPage, helpers.PageData{
			Title:    "Plates",
			LoggedIn: true,
			Alert:    helpers.ListingFailureAlert,
			Cards:    view.Cards,
		})
		utils.Error("ListingPageHandler: failed to load plates", map[string]any{
			"handler": "ListingPageHandler",
			"reason":  message,
			"error":   view.Err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, views.ListingPage, helpers.PageData{
		Title:    "Plates",
		LoggedIn: true,
		Notice:   helpers.NoticeText(c.Query("notice")),
		Cards:    view.Cards,
	})
	helpers.LogSuccess("ListingPageHandler", "plates rendered", map[string]any{"count": len(view.Cards)})
}

// BidPageHandler handles GET /bid?plate_id=
func (h *PagesHandler) BidPageHandler(c *gin.Context) {
	token := h.sessions.Read(c.Request)
	view := controller.NewBidSubmitter(h.service, token).Prepare(c.Query("plate_id"))

	if view.Outcome == controller.OutcomeLogin {
		c.Redirect(http.StatusFound, LoginPath)
		return
	}

	c.HTML(http.StatusOK, views.BidPage, helpers.PageData{
		Title:    "Place a bid",
		LoggedIn: true,
		PlateID:  view.PlateID,
	})
}

// SubmitBidHandler handles POST /bid
func (h *PagesHandler) SubmitBidHandler(c *gin.Context) {
	token := h.sessions.Read(c.Request)
	if !token.Present() {
		utils.Info("SubmitBidHandler: no session, redirecting to login", map[string]any{"path": c.Request.URL.Path})
		c.Redirect(http.StatusSeeOther, LoginPath)
		return
	}

	var req helpers.BidFormRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", views.BidPage, helpers.PageData{Title: "Place a bid", LoggedIn: true}, err)
		return
	}

	submitter, release := h.acquireSubmitter(token)
	defer release()
	view := submitter.Submit(c.Request.Context(), controller.BidForm{PlateID: req.PlateID, Amount: req.Amount})

	switch view.Outcome {
	case controller.OutcomeLogin:
		c.Redirect(http.StatusSeeOther, LoginPath)
		return
	case controller.OutcomeFailed:
		status, message := helpers.MapErrorToHTTP(view.Err)
		c.HTML(status, views.BidPage, helpers.PageData{
			Title:    "Place a bid",
			LoggedIn: true,
			Alert:    view.Alert,
			PlateID:  view.PlateID,
			Amount:   view.Amount,
		})
		utils.Error("SubmitBidHandler: failed to submit bid", map[string]any{
			"handler":  "SubmitBidHandler",
			"plate_id": req.PlateID,
			"reason":   message,
			"error":    view.Err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, ListingPath+"?notice="+url.QueryEscape(helpers.NoticeBidSubmitted))
	helpers.LogSuccess("SubmitBidHandler", "bid submitted", map[string]any{
		"plate_id": view.PlateID,
		"amount":   view.Amount,
	})
}

// LoginPageHandler handles GET /login
func (h *PagesHandler) LoginPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, views.LoginPage, helpers.PageData{
		Title:  "Sign in",
		Notice: helpers.NoticeText(c.Query("notice")),
	})
}

// SaveSessionHandler handles POST /login. It only stores a token obtained elsewhere.
func (h *PagesHandler) SaveSessionHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "SaveSessionHandler", views.LoginPage, helpers.PageData{Title: "Sign in"}, err)
		return
	}

	token := session.Token(req.Token)
	if !token.Present() {
		helpers.HandleBindError(c, "SaveSessionHandler", views.LoginPage, helpers.PageData{Title: "Sign in"}, errBlankToken)
		return
	}

	h.sessions.Save(c.Writer, token)
	c.Redirect(http.StatusSeeOther, ListingPath)
	helpers.LogSuccess("SaveSessionHandler", "session stored", nil)
}

// LogoutHandler handles POST /logout
func (h *PagesHandler) LogoutHandler(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, LoginPath+"?notice="+url.QueryEscape(helpers.NoticeSignedOut))
}
