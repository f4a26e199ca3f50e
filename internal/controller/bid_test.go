package controller

import (
	"context"
	"errors"
	"testing"

	"plate-auction-web/internal/auction"
	"plate-auction-web/internal/models"
	"plate-auction-web/internal/plateerrors"
	"plate-auction-web/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestBidSubmitter_Prepare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := auction.NewMockService(ctrl)

	t.Run("prefills_plate_id", func(t *testing.T) {
		view := NewBidSubmitter(mockService, "tok").Prepare("42")
		require.Equal(t, OutcomeRendered, view.Outcome)
		require.Equal(t, "42", view.PlateID)
		require.Empty(t, view.Alert)
	})

	t.Run("no_session", func(t *testing.T) {
		view := NewBidSubmitter(mockService, "").Prepare("42")
		require.Equal(t, OutcomeLogin, view.Outcome)
		require.ErrorIs(t, view.Err, plateerrors.ErrMissingSession)
	})
}

func TestBidSubmitter_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := auction.NewMockService(ctrl)

	tests := []struct {
		name        string
		token       string
		form        BidForm
		mockSetup   func()
		wantOutcome Outcome
		wantAlert   string
		wantErrIs   error
	}{
		{
			name:  "success",
			token: "tok",
			form:  BidForm{PlateID: "7", Amount: "150"},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "tok", models.BidRequest{PlateID: 7, Amount: "150"}).
					Return(nil).
					Times(1)
			},
			wantOutcome: OutcomeListing,
		},
		{
			name:  "fractional_amount_with_spaces",
			token: "tok",
			form:  BidForm{PlateID: " 7 ", Amount: " 99.5 "},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "tok", models.BidRequest{PlateID: 7, Amount: "99.5"}).
					Return(nil)
			},
			wantOutcome: OutcomeListing,
		},
		{
			name:        "no_session",
			token:       "",
			form:        BidForm{PlateID: "7", Amount: "150"},
			mockSetup:   func() {},
			wantOutcome: OutcomeLogin,
			wantErrIs:   plateerrors.ErrMissingSession,
		},
		{
			name:  "service_rejects",
			token: "tok",
			form:  BidForm{PlateID: "7", Amount: "10"},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "tok", models.BidRequest{PlateID: 7, Amount: "10"}).
					Return(&auction.StatusError{Op: "submit_bid", StatusCode: 400})
			},
			wantOutcome: OutcomeFailed,
			wantAlert:   BidFailureAlert,
			wantErrIs:   plateerrors.ErrUpstream,
		},
		{
			name:  "session_expired_gets_generic_alert",
			token: "tok",
			form:  BidForm{PlateID: "7", Amount: "10"},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "tok", gomock.Any()).
					Return(&auction.StatusError{Op: "submit_bid", StatusCode: 401})
			},
			wantOutcome: OutcomeFailed,
			wantAlert:   BidFailureAlert,
			wantErrIs:   plateerrors.ErrUnauthorized,
		},
		{
			name:  "network_fault",
			token: "tok",
			form:  BidForm{PlateID: "7", Amount: "10"},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "tok", gomock.Any()).
					Return(errors.New("dial tcp: connection refused"))
			},
			wantOutcome: OutcomeFailed,
			wantAlert:   BidFailureAlert,
		},
		{
			name:        "missing_amount",
			token:       "tok",
			form:        BidForm{PlateID: "7", Amount: ""},
			mockSetup:   func() {},
			wantOutcome: OutcomeFailed,
			wantAlert:   InvalidBidAlert,
			wantErrIs:   plateerrors.ErrInvalidBid,
		},
		{
			name:        "negative_amount",
			token:       "tok",
			form:        BidForm{PlateID: "7", Amount: "-5"},
			mockSetup:   func() {},
			wantOutcome: OutcomeFailed,
			wantAlert:   InvalidBidAlert,
			wantErrIs:   plateerrors.ErrInvalidBid,
		},
		{
			name:        "non_numeric_plate",
			token:       "tok",
			form:        BidForm{PlateID: "abc", Amount: "100"},
			mockSetup:   func() {},
			wantOutcome: OutcomeFailed,
			wantAlert:   InvalidBidAlert,
			wantErrIs:   plateerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			submitter := NewBidSubmitter(mockService, session.Token(tc.token))
			view := submitter.Submit(context.Background(), tc.form)

			require.Equal(t, tc.wantOutcome, view.Outcome)
			require.Equal(t, tc.wantAlert, view.Alert)
			require.Equal(t, StateIdle, submitter.State())
			if tc.wantErrIs != nil {
				require.ErrorIs(t, view.Err, tc.wantErrIs)
			}
			if tc.wantOutcome == OutcomeFailed {
				require.Equal(t, tc.form.PlateID, view.PlateID)
				require.Equal(t, tc.form.Amount, view.Amount)
			}
		})
	}
}

func TestBidSubmitter_RejectsConcurrentSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := auction.NewMockService(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	mockService.EXPECT().
		SubmitBid(gomock.Any(), "tok", models.BidRequest{PlateID: 1, Amount: "10"}).
		DoAndReturn(func(ctx context.Context, token string, bid models.BidRequest) error {
			close(started)
			<-release
			return nil
		}).
		Times(1)

	submitter := NewBidSubmitter(mockService, "tok")

	done := make(chan BidView)
	go func() {
		done <- submitter.Submit(context.Background(), BidForm{PlateID: "1", Amount: "10"})
	}()

	<-started
	require.Equal(t, StateSubmitting, submitter.State())

	second := submitter.Submit(context.Background(), BidForm{PlateID: "1", Amount: "10"})
	require.Equal(t, OutcomeFailed, second.Outcome)
	require.ErrorIs(t, second.Err, plateerrors.ErrSubmitting)

	close(release)
	first := <-done
	require.Equal(t, OutcomeListing, first.Outcome)
	require.Equal(t, StateIdle, submitter.State())
}

func TestParseBid(t *testing.T) {
	tests := []struct {
		name    string
		form    BidForm
		want    models.BidRequest
		wantErr bool
	}{
		{name: "integer", form: BidForm{PlateID: "3", Amount: "100"}, want: models.BidRequest{PlateID: 3, Amount: "100"}},
		{name: "decimal", form: BidForm{PlateID: "3", Amount: "100.25"}, want: models.BidRequest{PlateID: 3, Amount: "100.25"}},
		{name: "trailing_zero_kept", form: BidForm{PlateID: "3", Amount: "1500.50"}, want: models.BidRequest{PlateID: 3, Amount: "1500.50"}},
		{name: "beyond_float_precision", form: BidForm{PlateID: "3", Amount: "99999999999999999"}, want: models.BidRequest{PlateID: 3, Amount: "99999999999999999"}},
		{name: "tiny_amount", form: BidForm{PlateID: "3", Amount: " 0.0000001 "}, want: models.BidRequest{PlateID: 3, Amount: "0.0000001"}},
		{name: "zero_plate", form: BidForm{PlateID: "0", Amount: "100"}, wantErr: true},
		{name: "empty_plate", form: BidForm{PlateID: "", Amount: "100"}, wantErr: true},
		{name: "zero_amount", form: BidForm{PlateID: "3", Amount: "0"}, wantErr: true},
		{name: "infinite_amount", form: BidForm{PlateID: "3", Amount: "Inf"}, wantErr: true},
		{name: "nan_amount", form: BidForm{PlateID: "3", Amount: "NaN"}, wantErr: true},
		{name: "signed_amount", form: BidForm{PlateID: "3", Amount: "+5"}, wantErr: true},
		{name: "hex_amount", form: BidForm{PlateID: "3", Amount: "0x10"}, wantErr: true},
		{name: "overflow_amount", form: BidForm{PlateID: "3", Amount: "1e400"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBid(tc.form)
			if tc.wantErr {
				require.ErrorIs(t, err, plateerrors.ErrInvalidBid)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
