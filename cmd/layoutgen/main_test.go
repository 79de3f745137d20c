package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"stationdrive/internal/physics"
	"stationdrive/internal/world"
)

func TestRunWritesLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	var out bytes.Buffer

	if err := run([]string{"--seed", "abc", "-o", path, "--trees", "5", "--rocks", "0", "--rings", "1"}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	l, err := world.LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout failed: %v", err)
	}
	if l.Seed != "abc" {
		t.Errorf("Expected seed 'abc', got '%s'", l.Seed)
	}
	if n := l.CountKind(physics.KindTree); n != 5 {
		t.Errorf("Expected 5 trees, got %d", n)
	}
	if n := l.CountKind(physics.KindRock); n != 0 {
		t.Errorf("Expected 0 rocks, got %d", n)
	}
	if n := l.CountKind(physics.KindMountain); n != 12 {
		t.Errorf("Expected 12 mountains, got %d", n)
	}
	if !bytes.Contains(out.Bytes(), []byte("4 stations")) {
		t.Errorf("Expected summary line, got %q", out.String())
	}
}

func TestRunMatchesGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := run([]string{"--seed", "same", "--out", path}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	l, err := world.LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout failed: %v", err)
	}
	want := world.Generate("same", world.DefaultGenOptions())
	if len(l.Props) != len(want.Props) {
		t.Fatalf("Expected %d props, got %d", len(want.Props), len(l.Props))
	}
	for i := range want.Props {
		if l.Props[i] != want.Props[i] {
			t.Errorf("Prop %d differs: %+v vs %+v", i, l.Props[i], want.Props[i])
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	if err := run([]string{"--nope"}, &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
