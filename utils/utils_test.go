package utils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestEvaluateDimension(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{"1024", 1024},
		{" 768 ", 768},
		{"SourceWidth", 640},
		{"SourceHeight / 2", 240},
		{"Align(SourceWidth + 1, 64)", 704},
		{"Min(SourceWidth, 1024)", 640},
		{"Max(SourceHeight, 768)", 768},
	}
	for _, tt := range tests {
		got, err := EvaluateDimension(tt.expr, 640, 480)
		if err != nil {
			t.Errorf("EvaluateDimension(%q): %v", tt.expr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EvaluateDimension(%q) = %d, want %d", tt.expr, got, tt.want)
		}
	}
}

func TestEvaluateDimensionRejects(t *testing.T) {
	for _, expr := range []string{"", "...", "0", "-5", "SourceWidth / 3", "Depth", "SourceWidth - 1000", "Align(1, 0)", "((",
		"3037000500", "4294967296", "SourceWidth * 10000000"} {
		if got, err := EvaluateDimension(expr, 640, 480); err == nil {
			t.Errorf("EvaluateDimension(%q) = %d, want error", expr, got)
		}
	}
}

func TestCheckCanvasSize(t *testing.T) {
	if err := CheckCanvasSize(1024, 768); err != nil {
		t.Errorf("CheckCanvasSize(1024, 768) = %v", err)
	}
	if err := CheckCanvasSize(MaxCanvasElements, 1); err != nil {
		t.Errorf("CheckCanvasSize(MaxCanvasElements, 1) = %v", err)
	}
	for _, c := range [][2]int{{0, 1}, {1, -1}, {50000, 50000}, {3037000500, 3037000500}, {MaxCanvasElements, 2}} {
		if err := CheckCanvasSize(c[0], c[1]); err == nil {
			t.Errorf("CheckCanvasSize(%d, %d) = nil, want error", c[0], c[1])
		}
	}
}

func TestGuardAndIdentifiers(t *testing.T) {
	if got := GuardToken("boot_screen"); got != "_BOOT_SCREEN_H" {
		t.Errorf("GuardToken = %s", got)
	}
	for in, want := range map[string]string{
		"images/Boot Logo.png": "boot_logo",
		"3d-cube.bmp":          "img_3d_cube",
		"___.png":              "image",
		"splash.webp":          "splash",
	} {
		if got := IdentifierFromPath(in); got != want {
			t.Errorf("IdentifierFromPath(%q) = %q, want %q", in, got, want)
		}
		if !IsValidSymbol(IdentifierFromPath(in)) {
			t.Errorf("IdentifierFromPath(%q) is not a valid symbol", in)
		}
	}
	for _, bad := range []string{"", "9lives", "has-dash", "sp ace"} {
		if IsValidSymbol(bad) {
			t.Errorf("IsValidSymbol(%q) = true", bad)
		}
	}
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"logo.h", ".logo.h.42.tmp", "font.h", "logo.c", ".other.h.1.tmp"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	removed, err := Reset(dir, []string{"logo"})
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed %d files, want 2", removed)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	sort.Strings(left)
	want := []string{".other.h.1.tmp", "font.h", "logo.c"}
	if len(left) != len(want) {
		t.Fatalf("left %v, want %v", left, want)
	}
	for i := range want {
		if left[i] != want[i] {
			t.Errorf("left %v, want %v", left, want)
			break
		}
	}

	if n, err := Reset(filepath.Join(dir, "nope"), []string{"logo"}); err != nil || n != 0 {
		t.Errorf("Reset(missing dir) = %d, %v; want 0, nil", n, err)
	}
}
