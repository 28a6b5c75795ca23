package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/five82/itemdeck/internal/app"
)

func TestRootCmd_ParsesFlags(t *testing.T) {
	var got app.Options
	cmd := newRootCmd("test", func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"--config", "/tmp/c.toml", "--prefs", "/tmp/p.toml", "--log-level", "debug", "--batch", "12"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	want := app.Options{ConfigPath: "/tmp/c.toml", PrefsPath: "/tmp/p.toml", LogLevel: "debug", BatchSize: 12}
	if got != want {
		t.Fatalf("options = %#v, want %#v", got, want)
	}
}

func TestRootCmd_RejectsNegativeBatch(t *testing.T) {
	called := false
	cmd := newRootCmd("test", func(context.Context, app.Options) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"--batch=-3"})

	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "batch must be >= 0") {
		t.Fatalf("err = %v, want batch validation error", err)
	}
	if called {
		t.Fatalf("run function called despite invalid flags")
	}
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd("1.2.3", func(context.Context, app.Options) error {
		t.Fatalf("run function called for --version")
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), "1.2.3") {
		t.Fatalf("version output = %q", out.String())
	}
}
