package integrationtests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/models"
	"plate-auction-web/internal/repository"
	"plate-auction-web/internal/server"
	"plate-auction-web/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupTestRouter initializes the router on top of any auction service.
func SetupTestRouter(t *testing.T, service auction.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := server.SetupRouter(service, session.NewStore(session.DefaultCookieName, false), prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}
	return router
}

// SetupTestRouterWithPlates initializes the router on an in-memory backend seeded with plates.
func SetupTestRouterWithPlates(t *testing.T, plates ...repository.Plate) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	for _, p := range plates {
		repo.AddPlate(p)
	}
	return SetupTestRouter(t, repo), repo
}

// ExecuteRequest executes a request with an optional session cookie and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, target, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func openPlate(id int64, number string) repository.Plate {
	return repository.Plate{
		ID:          id,
		PlateNumber: number,
		Description: number + " description",
		Deadline:    time.Now().UTC().Add(time.Hour),
		Active:      true,
	}
}

// recordedCall is one request seen by FakeAuctionAPI
type recordedCall struct {
	Method        string
	Path          string
	Authorization string
	Body          map[string]any
}

// FakeAuctionAPI is an httptest stand-in for the remote auction service
type FakeAuctionAPI struct {
	mu         sync.Mutex
	calls      []recordedCall
	Plates     []models.PlateListing
	ListStatus int
	BidStatus  int
	Server     *httptest.Server
}

// NewFakeAuctionAPI starts a fake upstream answering 200 by default
func NewFakeAuctionAPI(t *testing.T) *FakeAuctionAPI {
	t.Helper()
	f := &FakeAuctionAPI{ListStatus: http.StatusOK, BidStatus: http.StatusOK}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeAuctionAPI) serve(w http.ResponseWriter, r *http.Request) {
	call := recordedCall{Method: r.Method, Path: r.URL.Path, Authorization: r.Header.Get("Authorization")}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&call.Body)
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	listStatus, bidStatus, plates := f.ListStatus, f.BidStatus, f.Plates
	f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/plates/":
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(listStatus)
		if listStatus == http.StatusOK {
			_ = json.NewEncoder(w).Encode(plates)
		}
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/bid/"):
		w.WriteHeader(bidStatus)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// Calls returns a copy of the recorded requests
func (f *FakeAuctionAPI) Calls() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}

// Client returns an auction client pointed at the fake
func (f *FakeAuctionAPI) Client() *auction.Client {
	return auction.NewClient(f.Server.URL, 2*time.Second)
}
