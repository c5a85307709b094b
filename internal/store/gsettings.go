package store

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/gsetwacom/gsetwacom/internal/gvariant"
)

// GSettings is a Store backed by the host's gsettings(1) command line tool.
// Relocatable schemas are addressed as "schema:path".
//
// Failures from the tool (unreachable session bus, unknown schema) are
// wrapped with the captured stderr and propagated; there is no retry.
type GSettings struct {
	log *zap.Logger
}

// NewGSettings returns a Store that shells out to gsettings(1).
func NewGSettings(log *zap.Logger) *GSettings {
	return &GSettings{log: log}
}

// ListKeys implements Store.
func (g *GSettings) ListKeys(ctx context.Context, schema string) ([]string, error) {
	out, err := g.run(ctx, "list-keys", schema)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Get implements Store.
func (g *GSettings) Get(ctx context.Context, schema, path, key string) (string, error) {
	return g.run(ctx, "get", schema+":"+path, key)
}

// Set implements Store.
func (g *GSettings) Set(ctx context.Context, schema, path, key string, value gvariant.Value) error {
	g.log.Debug("writing setting",
		zap.String("schema", schema),
		zap.String("path", path),
		zap.String("key", key),
		zap.String("value", value.Text()),
	)
	_, err := g.run(ctx, "set", schema+":"+path, key, value.Text())
	return err
}

func (g *GSettings) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gsettings", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("gsettings %s: %w: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("gsettings %s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
