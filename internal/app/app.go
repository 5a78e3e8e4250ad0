package app

import (
	"context"
	"io"

	"go.uber.org/zap"

	"forwardtask/internal/adapters/filesystem"
	"forwardtask/internal/adapters/sqlite"
	"forwardtask/internal/application"
	"forwardtask/internal/application/commands"
	"forwardtask/internal/config"
	"forwardtask/internal/domain"
	"forwardtask/internal/logging"
	"forwardtask/internal/ports"
)

// Options selects configuration for Open
type Options struct {
	ConfigPath string    // empty for the default location
	Vault      string    // overrides config and environment when set
	LogOutput  io.Writer // where logs go; nil discards them
}

// App holds the wired collaborators shared by every entry point
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Vault    *filesystem.Vault
	Notes    *filesystem.DailyNotes
	Settings *config.Settings
	Journal  ports.MoveJournal // nil when disabled or unavailable
}

// Open loads configuration and wires the adapters
func Open(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	logger := logging.New(cfg.Log.Level, out)

	vaultPath := cfg.VaultPath()
	if opts.Vault != "" {
		vaultPath = opts.Vault
	}
	vault := filesystem.NewVault(vaultPath)

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Vault:    vault,
		Notes:    filesystem.NewDailyNotes(vault, cfg.DailyNoteSettings(), logger),
		Settings: config.NewSettings(cfg),
	}

	if cfg.JournalEnabled() {
		path := cfg.Journal.Path
		if path == "" {
			path = sqlite.DatabasePath(vault.Root())
		}
		j := sqlite.NewJournal()
		if err := j.Open(path); err != nil {
			// Moves work without a journal
			logger.Warn("move journal unavailable", zap.String("path", path), zap.Error(err))
		} else {
			a.Journal = j
		}
	}

	logger.Debug("app ready", zap.String("vault", vault.Root()), zap.String("config", cfg.File))
	return a, nil
}

// Services bundles the collaborators for a command acting on editor
func (a *App) Services(editor ports.Editor, notifier ports.Notifier) commands.Services {
	svc := commands.Services{
		Editor:   editor,
		Notes:    a.Notes,
		Store:    a.Vault,
		Settings: a.Settings,
		Notifier: notifier,
		Logger:   a.Logger,
	}
	if a.Journal != nil {
		svc.Journal = a.Journal
	}
	return svc
}

// OpenBuffer loads a note given as an absolute or vault-relative path with
// the cursor on a 0-based line. A line outside the note is a validation error.
func (a *App) OpenBuffer(ctx context.Context, path string, line int) (*filesystem.Buffer, error) {
	id, err := a.Vault.ID(path)
	if err != nil {
		return nil, err
	}
	buf, err := filesystem.OpenBuffer(ctx, a.Vault, id)
	if err != nil {
		return nil, err
	}
	if err := application.ValidateLine(line, buf.LineCount()); err != nil {
		return nil, err
	}
	buf.SetCursor(line)
	return buf, nil
}

// OpenEditor is OpenBuffer behind the ports.Editor interface
func (a *App) OpenEditor(ctx context.Context, path string, line int) (ports.Editor, error) {
	buf, err := a.OpenBuffer(ctx, path, line)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// DailyNotePath resolves the daily note offset days from today to an absolute path
func (a *App) DailyNotePath(ctx context.Context, offset int) (domain.DocumentID, string, error) {
	id, err := a.Notes.Resolve(ctx, offset)
	if err != nil {
		return "", "", err
	}
	p, err := a.Vault.Path(id)
	return id, p, err
}

// Close releases the journal and flushes logs
func (a *App) Close() error {
	_ = a.Logger.Sync()
	if a.Journal != nil {
		return a.Journal.Close()
	}
	return nil
}
