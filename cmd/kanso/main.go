package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-tracker/internal/app"
	"github.com/comitanigiacomo/kanso-tracker/internal/config"
)

var envFile string

// openApp is swapped in tests to run commands against an in-memory store.
var openApp = func(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return app.New(ctx, cfg, app.WithoutReminders())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kanso",
		Short:         "Habit tracking from the terminal",
		Long:          `kanso reads and updates the same store as the Kanso Tracker API: mark habits done, print streaks and heatmaps, move data in and out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with the store configuration")

	root.AddCommand(habitsCmd())
	root.AddCommand(doneCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(heatmapCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(importCmd())

	return root
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// withApp opens the application for the duration of one command.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
