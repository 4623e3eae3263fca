package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/app"
	"github.com/DDLX-svg/EdifyX-sub000/internal/config"
	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/remote"
	"github.com/DDLX-svg/EdifyX-sub000/internal/stats"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
	"github.com/DDLX-svg/EdifyX-sub000/internal/tokens"
	"github.com/spf13/cobra"
)

// services bundles the wired backend shared by the TUI and the CLI
// subcommands.
type services struct {
	cfg    *config.Config
	st     *store.Store
	acct   *account.Store
	events store.EventRepo
	client *remote.Client // nil when offline
}

func (s *services) close() {
	s.acct.Close()
	_ = s.st.Close()
}

// openServices loads config, opens the store, and starts the account
// writer. Callers must call close.
func openServices(cmd *cobra.Command) (*services, error) {
	cfg := config.Load()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	acct, err := account.New(context.Background(), st.AccountRepo(), cfg.UserID)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load account: %w", err)
	}

	svc := &services{
		cfg:    cfg,
		st:     st,
		acct:   acct,
		events: st.EventRepo(),
	}
	if !cfg.Offline() {
		svc.client = remote.New(cfg.APIURL, cfg.DataURL)
	}
	return svc, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.close()

	var remoteStats stats.RemoteStats
	var remoteTokens tokens.RemoteTokens
	if svc.client != nil {
		remoteStats = svc.client
		remoteTokens = svc.client
	} else {
		fmt.Fprintln(os.Stderr, "No EDIFYX_API_URL configured; running offline. Stat submissions will queue for `edifyx sync`.")
	}

	var source question.Source
	if svc.client != nil && svc.cfg.DataURL != "" {
		source = question.NewCSVSource(svc.client.PoolURL)
	} else {
		source = question.DemoSource()
	}

	engine := &quiz.Engine{
		Source: source,
		Tokens: tokens.New(svc.cfg.UserID, svc.acct, remoteTokens, svc.events),
		Stats:  stats.New(svc.cfg.UserID, svc.acct, remoteStats, svc.events),
		Log:    app.NewEventLog(svc.events),
	}

	return app.Run(app.Options{
		Engine:  engine,
		Account: svc.acct,
		Events:  svc.events,
	})
}
