package mainview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	props := Props{
		Width:  100,
		Height: 50,
		Header: "HEADER",
		Body:   "BODY",
	}

	got := Render(props)

	if !strings.Contains(got, "HEADER") {
		t.Error("Missing header")
	}
	if !strings.Contains(got, "BODY") {
		t.Error("Missing body")
	}
	if h := lipgloss.Height(got); h != 50 {
		t.Errorf("height = %d, want 50", h)
	}
}

func TestRender_ClipsToHeight(t *testing.T) {
	got := Render(Props{Width: 20, Height: 2, Body: "one\ntwo\nthree"})
	if strings.Contains(got, "three") {
		t.Errorf("Render() should clip to height, got %q", got)
	}
}

func TestRender_Dimmed(t *testing.T) {
	got := Render(Props{Width: 20, Height: 1, Body: "BODY", Dimmed: true})
	if !strings.Contains(got, "BODY") {
		t.Errorf("Render() = %q, want body", got)
	}
}
