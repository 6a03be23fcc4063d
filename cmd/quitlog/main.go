package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"

	"github.com/quitlog/quitlog/internal/cli"
	"github.com/quitlog/quitlog/internal/errors"
	"github.com/quitlog/quitlog/internal/lock"
	"github.com/quitlog/quitlog/internal/logger"
	"github.com/quitlog/quitlog/internal/storage"
	"github.com/quitlog/quitlog/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path: a .json file, a directory for Badger, or anything else for SQLite." type:"string"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize quitlog storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd     `cmd:"" help:"Log something you are giving up on."`
	List    cli.ListCmd    `cmd:"" help:"List active give-ups."`
	Pin     cli.PinCmd     `cmd:"" help:"Pin or unpin a give-up."`
	Done    cli.DoneCmd    `cmd:"" help:"Move a give-up to the achieved list."`
	Delete  cli.DeleteCmd  `cmd:"" help:"Delete a give-up."`
	Undo    cli.UndoCmd    `cmd:"" help:"Undo the last deletion while the window is open."`
	Restore cli.RestoreCmd `cmd:"" help:"Re-insert a deleted give-up from its JSON record."`

	Achieved struct {
		List   cli.AchievedListCmd   `cmd:"" help:"List achieved records." default:"1"`
		Pin    cli.AchievedPinCmd    `cmd:"" help:"Pin or unpin an achieved record."`
		Delete cli.AchievedDeleteCmd `cmd:"" help:"Delete an achieved record."`
	} `cmd:"" help:"Browse the achieved list."`

	Badges cli.BadgesCmd `cmd:"" help:"Show the badge wall."`
	Grove  cli.GroveCmd  `cmd:"" help:"Show the grove and its discovered species."`

	Profile struct {
		Show cli.ProfileShowCmd `cmd:"" help:"Show the profile." default:"1"`
		Set  cli.ProfileSetCmd  `cmd:"" help:"Update profile fields."`
	} `cmd:"" help:"Manage the poster profile."`

	Poster cli.PosterCmd `cmd:"" help:"Render a shareable poster."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
}

// envConfig covers the knobs that make no sense as per-invocation flags.
type envConfig struct {
	Store      string        `env:"QUITLOG_STORE"`
	Debug      bool          `env:"QUITLOG_DEBUG"`
	UndoWindow time.Duration `env:"QUITLOG_UNDO_WINDOW"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("quitlog"),
		kong.Description("A tracker for the things you decided not to do"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	envCfg, err := env.ParseAs[envConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid QUITLOG_* environment: %v\n", err)
		os.Exit(1)
	}

	storePath, err := resolveStorePath(CLI.Config, envCfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || envCfg.Debug,
		ConfigDir: filepath.Dir(storePath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store := storage.New(storage.ForPath(storePath))

	var opts []tracker.Option
	if envCfg.UndoWindow > 0 {
		opts = append(opts, tracker.WithUndoWindow(envCfg.UndoWindow))
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store, opts...),
	}

	// Doctor only inspects; everything else takes the single-writer lock.
	var lk *lock.Lock
	if commandName(kctx) != "doctor" {
		lk, err = lock.Acquire(storePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	runErr := kctx.Run(appCtx)

	if closeErr := store.Close(); closeErr != nil {
		logger.Error("failed to close store", "error", closeErr)
	}
	if releaseErr := lk.Release(); releaseErr != nil {
		logger.Error("failed to release lock", "error", releaseErr)
	}

	errors.Fatal(runErr)
}

func commandName(kctx *kong.Context) string {
	fields := strings.Fields(kctx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func resolveStorePath(flag, env string) (string, error) {
	path := flag
	if path == "" {
		path = env
	}
	if path == "" {
		path = "~/.config/quitlog/quitlog.db"
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return path, nil
}
