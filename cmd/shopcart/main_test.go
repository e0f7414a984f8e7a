package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/shopcart/internal/cliconfig"
	"github.com/bft-labs/shopcart/pkg/state"
)

func TestRun_Stdin(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.StateDir = t.TempDir()

	var out bytes.Buffer
	in := strings.NewReader("+ 3\n+ 0\n- 4\n")
	if err := run(context.Background(), cfg, zerolog.New(io.Discard), in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	// Initial render, then one redraw per command.
	if n := strings.Count(text, "delivery fee ¥25"); n != 4 {
		t.Errorf("footer rendered %d times, want 4", n)
	}
	if !strings.Contains(text, "total ¥37.50") || !strings.Contains(text, "ready to order") {
		t.Errorf("final footer missing from output:\n%s", text)
	}

	snap, err := state.NewFileRepository(cfg.StateDir).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Quantities) != 5 || snap.Quantities[0] != 1 || snap.Quantities[3] != 1 {
		t.Errorf("snapshot quantities = %v", snap.Quantities)
	}
}

func TestRun_FollowOnce(t *testing.T) {
	dir := t.TempDir()
	goods := filepath.Join(dir, "goods.toml")
	if err := os.WriteFile(goods, []byte("[[goods]]\ntitle = \"tea\"\nprice = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	feed := filepath.Join(dir, "feed.txt")
	if err := os.WriteFile(feed, []byte("+ 0\n+ 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := cliconfig.DefaultConfig()
	cfg.CatalogPath = goods
	cfg.FollowPath = feed
	cfg.Once = true

	var out bytes.Buffer
	if err := run(context.Background(), cfg, zerolog.New(io.Discard), strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "total ¥10.00") || !strings.Contains(out.String(), "¥20 short of delivery") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestRun_BadCatalog(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.toml")
	if err := run(context.Background(), cfg, zerolog.New(io.Discard), strings.NewReader(""), io.Discard); err == nil {
		t.Error("expected catalog error")
	}
}
