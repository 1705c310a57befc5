package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tripy/tripy-console/internal/api"
	"github.com/tripy/tripy-console/internal/busy"
	"github.com/tripy/tripy-console/internal/config"
	"github.com/tripy/tripy-console/internal/conversation"
	"github.com/tripy/tripy-console/internal/database"
	"github.com/tripy/tripy-console/internal/i18n"
	"github.com/tripy/tripy-console/internal/session"
	"github.com/tripy/tripy-console/internal/status"
	"github.com/tripy/tripy-console/internal/store"
	"github.com/tripy/tripy-console/internal/tui"
	"github.com/tripy/tripy-console/internal/views"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var startView string

	cmd := &cobra.Command{
		Use:   "tripy",
		Short: "Tripy console — terminal client for the Tripy travel assistant",
		Long:  "Tripy console signs in to a Tripy deployment and drives its assistant graph, identity and admin APIs from the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(startView)
		},
	}
	cmd.Flags().StringVar(&startView, "view", "", "view to open on launch (assistant, identity, admin, system)")

	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runConsole(startView string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.State.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("mkdir state dir: %w", err)
	}

	db, err := database.Open(cfg.State.DatabasePath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	st := store.New(db)
	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	reporter := status.NewReporter()
	sess := session.NewManager(client, st, reporter)
	conv := conversation.NewEngine(client, sess, reporter, st)
	sess.OnReset(conv.Clear)

	nav := views.New(views.Default()...)
	if startView != "" && !nav.SelectByName(startView) {
		return fmt.Errorf("unknown view %q", startView)
	}

	model := tui.New(tui.Deps{
		Config:   cfg,
		Client:   client,
		Session:  sess,
		Conv:     conv,
		Guard:    &busy.Guard{},
		Reporter: reporter,
		Nav:      nav,
		Locale:   i18n.Parse(cfg.UI.Locale),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the configured deployment's live and ready endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
			ctx := context.Background()

			failed := false
			if live, err := client.CheckLive(ctx); err != nil {
				failed = true
				fmt.Fprintf(cmd.OutOrStdout(), "live:  error: %s\n", api.Reason(err))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "live:  %s\n", live.Status)
			}
			if ready, err := client.CheckReady(ctx); err != nil {
				failed = true
				fmt.Fprintf(cmd.OutOrStdout(), "ready: error: %s\n", api.Reason(err))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "ready: %s\n", ready.Status)
			}
			if failed {
				return fmt.Errorf("health check failed for %s", cfg.API.BaseURL)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tripy %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
