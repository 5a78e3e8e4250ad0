package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"forwardtask/internal/application"
	"forwardtask/internal/domain"
)

var timeNow = time.Now

const (
	dailyNotesConfig  = ".obsidian/daily-notes.json"
	corePluginsConfig = ".obsidian/core-plugins.json"
	dailyNotesPlugin  = "daily-notes"
)

// obsidianDailyNotes mirrors .obsidian/daily-notes.json
type obsidianDailyNotes struct {
	Folder   string `json:"folder"`
	Format   string `json:"format"`
	Template string `json:"template"`
}

// DailyNotes implements ports.DailyNotes using Obsidian's daily-notes settings
type DailyNotes struct {
	vault    *Vault
	override domain.DailyNoteSettings
	logger   *zap.Logger
}

// NewDailyNotes creates a resolver. Non-empty fields of override take
// precedence over the vault's own daily-notes settings.
func NewDailyNotes(vault *Vault, override domain.DailyNoteSettings, logger *zap.Logger) *DailyNotes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyNotes{
		vault:    vault,
		override: override,
		logger:   logger,
	}
}

// Settings returns the effective daily-notes settings
func (d *DailyNotes) Settings() domain.DailyNoteSettings {
	var s domain.DailyNoteSettings

	data, err := os.ReadFile(filepath.Join(d.vault.Root(), filepath.FromSlash(dailyNotesConfig)))
	if err == nil {
		var raw obsidianDailyNotes
		if err := json.Unmarshal(data, &raw); err != nil {
			d.logger.Warn("ignoring unreadable daily-notes settings", zap.Error(err))
		} else {
			s = domain.DailyNoteSettings{Folder: raw.Folder, Format: raw.Format, Template: raw.Template}
		}
	}

	if d.override.Folder != "" {
		s.Folder = d.override.Folder
	}
	if d.override.Format != "" {
		s.Format = d.override.Format
	}
	if d.override.Template != "" {
		s.Template = d.override.Template
	}
	s.Folder = strings.TrimSpace(s.Folder)
	s.Format = strings.TrimSpace(s.Format)
	s.Template = strings.TrimSpace(s.Template)
	return s
}

// Enabled reports whether the daily-notes core plugin is on. A vault
// without core-plugins.json counts as enabled.
func (d *DailyNotes) Enabled() bool {
	data, err := os.ReadFile(filepath.Join(d.vault.Root(), filepath.FromSlash(corePluginsConfig)))
	if err != nil {
		return true
	}

	// Older Obsidian releases store a list of enabled plugin ids
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		for _, id := range list {
			if id == dailyNotesPlugin {
				return true
			}
		}
		return false
	}

	var flags map[string]bool
	if err := json.Unmarshal(data, &flags); err == nil {
		return flags[dailyNotesPlugin]
	}

	d.logger.Warn("ignoring unreadable core-plugins settings")
	return true
}

func (d *DailyNotes) target(offset int) (domain.DailyNoteSettings, time.Time, domain.DocumentID, error) {
	if !d.Enabled() {
		return domain.DailyNoteSettings{}, time.Time{}, "", application.ErrDailyNotesDisabled
	}
	settings := d.Settings()
	date := domain.StartOfDay(timeNow()).AddDate(0, 0, offset)
	return settings, date, settings.DailyNoteID(date), nil
}

// Resolve returns the daily note for today+offset, creating it if absent
func (d *DailyNotes) Resolve(ctx context.Context, offset int) (domain.DocumentID, error) {
	settings, date, id, err := d.target(offset)
	if err != nil {
		return "", err
	}
	if d.vault.Exists(id) {
		return id, nil
	}

	text := d.initialText(settings, date)
	if err := d.vault.Write(ctx, id, text); err != nil {
		return "", fmt.Errorf("%w: %v", application.ErrDestinationUnavailable, err)
	}

	d.logger.Info("created daily note", zap.String("note", string(id)))
	return id, nil
}

// Preview returns the daily note for today+offset and its text without creating it
func (d *DailyNotes) Preview(ctx context.Context, offset int) (domain.DocumentID, string, error) {
	settings, date, id, err := d.target(offset)
	if err != nil {
		return "", "", err
	}
	if !d.vault.Exists(id) {
		return id, d.initialText(settings, date), nil
	}

	text, err := d.vault.Read(ctx, id)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", application.ErrDestinationUnavailable, err)
	}
	return id, text, nil
}

// DateOf reports the date a daily note stands for
func (d *DailyNotes) DateOf(id domain.DocumentID) (time.Time, bool) {
	return d.Settings().DateOf(id)
}

// initialText returns the expanded template, or "" when there is none
// or it cannot be read
func (d *DailyNotes) initialText(settings domain.DailyNoteSettings, date time.Time) string {
	if settings.Template == "" {
		return ""
	}

	tmplID := domain.DocumentID(strings.TrimPrefix(settings.Template, "/"))
	if !strings.HasSuffix(string(tmplID), ".md") {
		tmplID += ".md"
	}

	tmpl, err := d.vault.Read(context.Background(), tmplID)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.logger.Warn("failed to read daily note template", zap.String("template", string(tmplID)), zap.Error(err))
		} else {
			d.logger.Warn("daily note template not found", zap.String("template", string(tmplID)))
		}
		return ""
	}

	return domain.ExpandTemplate(tmpl, settings, date, timeNow())
}
