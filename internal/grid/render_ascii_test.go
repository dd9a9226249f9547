package grid

import (
	"strings"
	"testing"
)

func TestRenderASCII(t *testing.T) {
	g := MustNew(3)
	mustSet(t, g, C(0, 0), Start)
	mustSet(t, g, C(2, 2), End)
	mustSet(t, g, C(1, 1), Barrier)
	mustSet(t, g, C(0, 1), Path)
	mustSet(t, g, C(1, 0), Visited)
	mustSet(t, g, C(2, 0), Frontier)

	expected := "S*.\nx#.\no.E\n"
	if got := RenderASCII(g); got != expected {
		t.Errorf("RenderASCII() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestParseASCIIRoundTrip(t *testing.T) {
	text := `
		S..#
		.#..
		.#.#
		...E
	`
	g, err := ParseASCII(text)
	if err != nil {
		t.Fatalf("ParseASCII failed: %v", err)
	}
	if g.Size() != 4 {
		t.Fatalf("expected size 4, got %d", g.Size())
	}
	if c, ok := g.Start(); !ok || c != C(0, 0) {
		t.Errorf("Start() = %v, %v", c, ok)
	}
	if c, ok := g.End(); !ok || c != C(3, 3) {
		t.Errorf("End() = %v, %v", c, ok)
	}
	if g.Count(Barrier) != 4 {
		t.Errorf("expected 4 barriers, got %d", g.Count(Barrier))
	}

	want := "S..#\n.#..\n.#.#\n...E\n"
	if got := RenderASCII(g); got != want {
		t.Errorf("round trip mismatch:\n%s", got)
	}
}

func TestParseASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "\n\n", "empty map"},
		{"not square", "..\n...\n", "has 3 cells"},
		{"unknown glyph", "..\n.?\n", "unknown glyph"},
		{"two starts", "S.\n.S\n", "second start"},
		{"two ends", "E.\nE.\n", "second end"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseASCII(tc.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}
