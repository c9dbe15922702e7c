package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Bar:    "BAR",
		Main:   "MAIN",
		Panel:  "PANEL",
		Footer: "FOOTER",
	}

	got := Render(props)

	for _, want := range []string{"BAR", "MAIN", "PANEL", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("Missing %s content", want)
		}
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[1], "MAIN") || !strings.Contains(lines[1], "PANEL") {
		t.Errorf("panel should share the content row, got %q", lines[1])
	}
	if strings.Index(lines[1], "MAIN") > strings.Index(lines[1], "PANEL") {
		t.Errorf("panel should be placed at the end, got %q", lines[1])
	}
}

func TestRender_ClosedPanel(t *testing.T) {
	got := Render(Props{Bar: "BAR", Main: "MAIN", Footer: "FOOTER"})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("Render() = %q, want three rows", got)
	}
}
