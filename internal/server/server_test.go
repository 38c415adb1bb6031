package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"nfl-games-service/internal/config"
	domaingames "nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/providers/espn"
	"nfl-games-service/internal/providers/fixture"
	"nfl-games-service/internal/teststubs"
	"nfl-games-service/internal/testutil"
)

type errProvider struct{}

func (e *errProvider) FetchGames(ctx context.Context, date string, tz string) ([]domaingames.Game, error) {
	_ = ctx
	_ = date
	_ = tz
	return nil, context.DeadlineExceeded
}

func TestServerServesHealthAndGames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := domaingames.Game{
		ID:            "stub-1",
		Source:        "stub",
		HomeTeam:      "Philadelphia Eagles",
		AwayTeam:      "Dallas Cowboys",
		HomeScore:     7,
		AwayScore:     3,
		Status:        "Q1",
		Quarter:       "1",
		TimeRemaining: "8:12",
	}

	provider := &teststubs.StubProvider{
		Games:  []domaingames.Game{game},
		Notify: make(chan struct{}),
	}

	cfg := config.Config{PollInterval: 5 * time.Millisecond}
	srv := newServerWithProvider(cfg, nil, provider)
	srv.poller.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	router := srv.Handler()

	healthReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, healthReq)

	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		gamesReq := httptest.NewRequest(http.MethodGet, "/games/today", nil)
		gamesRec := httptest.NewRecorder()
		router.ServeHTTP(gamesRec, gamesReq)

		if gamesRec.Code != http.StatusOK {
			t.Fatalf("expected 200 from /games/today, got %d", gamesRec.Code)
		}

		var today domaingames.TodayResponse
		if err := json.NewDecoder(gamesRec.Body).Decode(&today); err != nil {
			t.Fatalf("failed to decode games response: %v", err)
		}
		if len(today.Games) == 1 && today.Games[0].ID == "stub-1" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected live game adopted, got %+v", today.Games)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil)
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", provider)
	}
}

func TestSelectProviderChoosesESPN(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: "espn",
		ESPN: config.ESPNConfig{
			BaseURL: "http://example.com",
		},
	}, nil)
	if _, ok := provider.(*espn.Client); !ok {
		t.Fatalf("expected espn provider, got %T", provider)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: "fixture",
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Config{PollInterval: 5 * time.Millisecond}
	srv := newServerWithProvider(cfg, nil, &errProvider{})
	srv.poller.Start(ctx)

	// Give the poller a moment to attempt a fetch.
	time.Sleep(20 * time.Millisecond)

	router := srv.Handler()
	gamesReq := httptest.NewRequest(http.MethodGet, "/games/today", nil)
	gamesRec := httptest.NewRecorder()
	router.ServeHTTP(gamesRec, gamesReq)

	if gamesRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /games/today, got %d", gamesRec.Code)
	}

	var today domaingames.TodayResponse
	if err := json.NewDecoder(gamesRec.Body).Decode(&today); err != nil {
		t.Fatalf("failed to decode games response: %v", err)
	}
	if len(today.Games) != 0 {
		t.Fatalf("expected no games when provider errors, got %d", len(today.Games))
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithGames(nil), httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithGames(nil), blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithGames(nil), httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	plr := &testutil.StubPoller{}
	httpSrv := &testutil.ErrHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithGames(nil), httpSrv, plr)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, testutil.NewServiceWithGames(nil), httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
