package http_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/scheduler/internal/scheduler/http"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/notify"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/service"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite"
	"github.com/aussiebroadwan/scheduler/pkg/httpx"
	"github.com/aussiebroadwan/scheduler/pkg/idx"
	"github.com/aussiebroadwan/scheduler/pkg/schedsdk"
	"github.com/aussiebroadwan/scheduler/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type harness struct {
	client *schedsdk.Client
	srv    *httptest.Server
	store  *sqlite.Store
	sent   chan notify.Message
}

func newHarness(t *testing.T, limits httpx.Limits) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sent := make(chan notify.Message, 16)
	n := notify.NotifierFunc(func(_ context.Context, msg notify.Message) error {
		sent <- msg
		return nil
	})

	logger := slogx.Discard()
	router := httpapi.NewRouter("test", st, limits, logger)
	router.BookingService = service.NewBookingService(st, n)
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &harness{
		client: schedsdk.NewClient(srv.URL),
		srv:    srv,
		store:  st,
		sent:   sent,
	}
}

func future(d time.Duration) time.Time {
	return time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second).Add(d)
}

func johnWithAndy(at time.Time) schedsdk.CreateBookingRequest {
	return schedsdk.CreateBookingRequest{
		CandidateName:   "John",
		InterviewerName: "Andy",
		ProposedAt:      at,
		Platform:        schedsdk.PlatformGoogle,
		RecipientEmail:  "john@x.com",
	}
}

func TestBookingLifecycle(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())
	ctx := context.Background()
	at := future(0)

	created, err := h.client.CreateBooking(ctx, johnWithAndy(at))
	require.NoError(t, err)
	require.Equal(t, schedsdk.StatusPending, created.Status)
	require.True(t, at.Equal(created.ProposedAt))
	require.Len(t, created.Responses, 1)
	require.Equal(t, schedsdk.ResponsePending, created.Responses[0].ResponseStatus)

	select {
	case msg := <-h.sent:
		require.Equal(t, "john@x.com", msg.To)
		require.Equal(t, "Interview Invitation", msg.Subject)
	default:
		t.Fatal("no invitation sent")
	}

	responded, err := h.client.RespondToInvite(ctx, created.ID, schedsdk.RespondRequest{
		ResponseStatus: schedsdk.ResponseAccepted,
	})
	require.NoError(t, err)
	require.Equal(t, schedsdk.StatusAccepted, responded.Status)

	status, err := h.client.GetBookingStatus(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, schedsdk.StatusAccepted, status.Status)
	require.Equal(t, "John", status.CandidateName)
	require.Equal(t, "Andy", status.InterviewerName)
	require.Equal(t, schedsdk.PlatformGoogle, status.Platform)
}

func TestCreateBookingConflict(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())
	ctx := context.Background()
	at := future(0)

	_, err := h.client.CreateBooking(ctx, johnWithAndy(at))
	require.NoError(t, err)

	_, err = h.client.CreateBooking(ctx, johnWithAndy(at))
	require.True(t, schedsdk.IsSlotConflict(err), "got %v", err)

	_, err = h.client.CreateBooking(ctx, johnWithAndy(at.Add(time.Second)))
	require.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())
	ctx := context.Background()

	req := johnWithAndy(future(0))
	req.Platform = "SKYPE"
	req.RecipientEmail = "nope"

	_, err := h.client.CreateBooking(ctx, req)
	require.True(t, schedsdk.IsInvalidRequest(err))

	var apiErr *schedsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Contains(t, apiErr.Details, "platform")
	require.Contains(t, apiErr.Details, "recipient_email")

	past := johnWithAndy(time.Now().Add(-time.Hour))
	_, err = h.client.CreateBooking(ctx, past)
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Details, "proposed_at")
}

func TestCreateBookingRejectsBadJSON(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())

	for _, body := range []string{
		`{`,
		`{"candidate_name":"John","unknown":1}`,
		`{"candidate_name":"John","proposed_at":"tomorrow"}`,
	} {
		resp, err := http.Post(h.srv.URL+"/v1/bookings", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestRespondErrors(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())
	ctx := context.Background()

	created, err := h.client.CreateBooking(ctx, johnWithAndy(future(0)))
	require.NoError(t, err)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := h.client.RespondToInvite(ctx, idx.New().String(), schedsdk.RespondRequest{
			ResponseStatus: schedsdk.ResponseAccepted,
		})
		require.True(t, schedsdk.IsBookingNotFound(err), "got %v", err)

		_, err = h.client.GetBookingStatus(ctx, idx.New().String())
		require.True(t, schedsdk.IsBookingNotFound(err), "got %v", err)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := h.client.GetBookingStatus(ctx, "not-a-ulid")
		require.True(t, schedsdk.IsInvalidRequest(err), "got %v", err)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := h.client.RespondToInvite(ctx, created.ID, schedsdk.RespondRequest{ResponseStatus: "MAYBE"})
		require.True(t, schedsdk.IsInvalidRequest(err), "got %v", err)
	})

	t.Run("proposed without time", func(t *testing.T) {
		_, err := h.client.RespondToInvite(ctx, created.ID, schedsdk.RespondRequest{
			ResponseStatus: schedsdk.ResponseProposed,
		})
		require.True(t, schedsdk.IsInvalidRequest(err), "got %v", err)
	})

	t.Run("proposed with time", func(t *testing.T) {
		counter := future(time.Hour)
		got, err := h.client.RespondToInvite(ctx, created.ID, schedsdk.RespondRequest{
			ResponseStatus: schedsdk.ResponseProposed,
			ProposedAt:     &counter,
		})
		require.NoError(t, err)
		require.Equal(t, schedsdk.StatusRescheduled, got.Status)
		require.NotNil(t, got.Responses[0].ProposedAt)
		require.True(t, counter.Equal(*got.Responses[0].ProposedAt))
	})

	t.Run("missing invite", func(t *testing.T) {
		other, err := h.client.CreateBooking(ctx, johnWithAndy(future(2*time.Hour)))
		require.NoError(t, err)
		require.NoError(t, h.store.InviteResponses().DeleteInviteResponseByBookingID(ctx, other.ID))

		_, err = h.client.GetBookingStatus(ctx, other.ID)
		require.True(t, schedsdk.IsInviteNotFound(err), "got %v", err)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())
	ctx := context.Background()

	live, err := h.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := h.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, h.store.Close())

	_, err = h.client.GetReadiness(ctx)
	var apiErr *schedsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestRequestIDIsEchoed(t *testing.T) {
	t.Parallel()
	h := newHarness(t, httpx.DefaultLimits())

	req, err := http.NewRequest(http.MethodGet, h.srv.URL+"/livez", nil)
	require.NoError(t, err)
	req.Header.Set(slogx.RequestIDHeader, "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, "req-123", resp.Header.Get(slogx.RequestIDHeader))
}

func TestCreateBookingIsRateLimited(t *testing.T) {
	t.Parallel()

	limits := httpx.DefaultLimits()
	limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1}
	h := newHarness(t, limits)

	post := func() int {
		resp, err := http.Post(h.srv.URL+"/v1/bookings", "application/json", bytes.NewBufferString(`{}`))
		require.NoError(t, err)
		_ = resp.Body.Close()
		return resp.StatusCode
	}

	require.Equal(t, http.StatusBadRequest, post())
	require.Equal(t, http.StatusTooManyRequests, post())
}
