package suite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/terminal-games/internal/config"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config
}

// New - returns a context bounded by maxWaitDuration and a suite with default config.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// no file in a fresh temp dir, so only env and defaults apply
	conf, err := config.Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
	}
}

// Console - a console fed with the given input lines whose output is captured.
func (that *Suite) Console(lines ...string) (*console.Console, *bytes.Buffer) {
	that.Helper()

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	out := &bytes.Buffer{}

	return console.New(strings.NewReader(input), out), out
}
