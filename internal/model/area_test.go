package model

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"  Bowling ":    "Bowling",
		"ROPE   COURSE": "ROPE COURSE",
		"Laser\tTag":    "Laser Tag",
		"":              "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestCanonicalMatchesCaseInsensitively(t *testing.T) {
	areas := DefaultAreaTable()

	if got := areas.Canonical("bowling "); got != "BOWLING" {
		t.Fatalf("expected BOWLING, got %q", got)
	}
	if got := areas.Canonical("rope course"); got != "Rope Course" {
		t.Fatalf("expected Rope Course, got %q", got)
	}
	// 未命中时规范化后原样返回
	if got := areas.Canonical("  Mystery  Maze "); got != "Mystery Maze" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestAreaLookup(t *testing.T) {
	areas := DefaultAreaTable()

	if got := areas.Area("trampoline"); got != 9000 {
		t.Fatalf("expected 9000, got %v", got)
	}
	if got := areas.Area("Mystery Maze"); got != 0 {
		t.Fatalf("unknown activity must yield 0 area, got %v", got)
	}
}

func TestSerialToISO(t *testing.T) {
	// 纪元为 1899-12-30：序列值 2 即 1900-01-01
	if got := SerialToISO(2); got != "1900-01-01" {
		t.Fatalf("expected 1900-01-01, got %s", got)
	}
	if got := SerialToISO(0); got != "" {
		t.Fatalf("non-positive serial must yield empty string, got %q", got)
	}
}

func TestArcadeResolvedName(t *testing.T) {
	r := ArcadeRecord{GameNameFinal: "Air Hockey", GameName: "AIR HOCKEY OLD"}
	if r.ResolvedName() != "Air Hockey" {
		t.Fatalf("final name must win, got %q", r.ResolvedName())
	}

	r = ArcadeRecord{GameName: "AIR HOCKEY OLD"}
	if r.ResolvedName() != "AIR HOCKEY OLD" {
		t.Fatalf("must fall back to raw name, got %q", r.ResolvedName())
	}
}
