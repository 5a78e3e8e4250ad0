package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"forwardtask/internal/domain"
	"forwardtask/internal/ports"
)

func setupVault(t *testing.T, notes map[string]string) string {
	t.Helper()
	vault := t.TempDir()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("FORWARDTASK_VAULT", "")
	for name, content := range notes {
		p := filepath.Join(vault, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return vault
}

// run executes the CLI against vault with a private config file
func run(t *testing.T, vault string, args ...string) (string, error) {
	t.Helper()
	moveLine, moveTomorrow, moveDays, moveNextDay, moveDryRun, moveOpen = 0, false, 0, false, false, false
	addDays, nextLine, historyPending, historyLimit = 0, 0, false, 20
	for _, c := range rootCmd.Commands() {
		c.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	config := filepath.Join(filepath.Dir(vault), filepath.Base(vault)+".yaml")
	rootCmd.SetArgs(append([]string{"--vault", vault, "--config", config}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMove(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "# Plan\n- [ ] Buy milk\n- [ ] Call mom"})

	out, err := run(t, vault, "move", "Plan.md", "--line", "2", "--tomorrow")
	require.NoError(t, err)
	require.Contains(t, out, "✓ Task moved to tomorrow's Daily Note")
	require.Contains(t, out, "Next open task: line 3")

	source, err := os.ReadFile(filepath.Join(vault, "Plan.md"))
	require.NoError(t, err)
	require.Equal(t, "# Plan\n- [>] Buy milk\n- [ ] Call mom", string(source))

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	daily, err := os.ReadFile(filepath.Join(vault, tomorrow+".md"))
	require.NoError(t, err)
	require.Equal(t, "\n- [ ] Buy milk", string(daily))

	out, err = run(t, vault, "history")
	require.NoError(t, err)
	require.Contains(t, out, "completed")
	require.Contains(t, out, "Plan.md:2 -> "+tomorrow+".md")
	require.Contains(t, out, "1 move(s)")
}

type fakeObsidian struct{ opened []domain.DocumentID }

func (f *fakeObsidian) OpenFile(string) error { return nil }

func (f *fakeObsidian) OpenDocument(id domain.DocumentID) error {
	f.opened = append(f.opened, id)
	return nil
}

func TestMove_Open(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "- [ ] Buy milk"})
	fake := &fakeObsidian{}
	orig := newObsidianOpener
	newObsidianOpener = func(string) ports.ObsidianOpener { return fake }
	defer func() { newObsidianOpener = orig }()

	_, err := run(t, vault, "move", "Plan.md", "--line", "1", "--open")
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	require.Equal(t, []domain.DocumentID{domain.DocumentID(today + ".md")}, fake.opened)
}

func TestMove_AlreadyMoved(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "- [>] Buy milk"})

	out, err := run(t, vault, "move", "Plan.md", "--line", "1")
	require.Error(t, err)
	require.ErrorAs(t, err, new(notifiedError))
	require.Equal(t, "Task is already marked as moved\n", out)
}

func TestMove_LineOutOfRange(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "# Plan\n- [ ] Buy milk\n- [ ] Call mom"})

	out, err := run(t, vault, "move", "Plan.md", "--line", "99")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 99 is out of range")
	require.NotContains(t, out, "Task moved")

	source, err := os.ReadFile(filepath.Join(vault, "Plan.md"))
	require.NoError(t, err)
	require.Equal(t, "# Plan\n- [ ] Buy milk\n- [ ] Call mom", string(source))

	entries, err := os.ReadDir(vault)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestMove_DryRun(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "- [ ] Buy milk"})

	out, err := run(t, vault, "move", "Plan.md", "--line", "1", "--days", "2", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "Dry run")
	require.Contains(t, out, "+ - [ ] Buy milk")

	source, err := os.ReadFile(filepath.Join(vault, "Plan.md"))
	require.NoError(t, err)
	require.Equal(t, "- [ ] Buy milk", string(source))

	entries, err := os.ReadDir(vault)
	require.NoError(t, err)
	require.Len(t, entries, 1, "dry run creates no note")
}

func TestMove_NextDayConflicts(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "- [ ] Buy milk"})

	_, err := run(t, vault, "move", "Plan.md", "--line", "1", "--next-day", "--tomorrow")
	require.Error(t, err)
}

func TestAddAndSectionHeader(t *testing.T) {
	vault := setupVault(t, nil)

	out, err := run(t, vault, "config", "set", "section-header", "## Tasks")
	require.NoError(t, err)
	require.Equal(t, "Section header set to ## Tasks\n", out)

	out, err = run(t, vault, "config", "get", "section-header")
	require.NoError(t, err)
	require.Equal(t, "Section header: ## Tasks\n", out)

	out, err = run(t, vault, "add", "Buy", "milk")
	require.NoError(t, err)
	require.Equal(t, "✓ Task added to today's Daily Note\n", out)

	today := time.Now().Format("2006-01-02")
	daily, err := os.ReadFile(filepath.Join(vault, today+".md"))
	require.NoError(t, err)
	require.Equal(t, "\n## Tasks\n\n- [ ] Buy milk", string(daily))

	out, err = run(t, vault, "config", "set", "section-header")
	require.NoError(t, err)
	require.Equal(t, "Section header cleared\n", out)
}

func TestNext(t *testing.T) {
	vault := setupVault(t, map[string]string{"Plan.md": "- [ ] A\n- [x] B\n- [ ] C"})

	out, err := run(t, vault, "next", "Plan.md", "--line", "1")
	require.NoError(t, err)
	require.Equal(t, "3: - [ ] C\n", out)

	out, err = run(t, vault, "next", "Plan.md", "--line", "0")
	require.NoError(t, err)
	require.Equal(t, "1: - [ ] A\n", out)

	_, err = run(t, vault, "next", "Plan.md", "--line", "3")
	require.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	vault := setupVault(t, nil)

	out, err := run(t, vault, "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, "vault:   "+vault)
	require.Contains(t, out, "journal: ")
}
