package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/lazyfile/internal/rclone"
)

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestViewMainScreen(t *testing.T) {
	h := newTestHarness(newFakeRunner("gdrive", "s3"))
	view := h.View()
	for _, want := range []string{"Remotes", "Files", "> gdrive", "  s3", "Select a remote | Connected", "q Quit"} {
		if !contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewBrowsingShowsLocationAndDirectories(t *testing.T) {
	runner := newFakeRunner("gdrive")
	runner.tree["gdrive:"] = []rclone.FileItem{
		{Name: "docs", IsDir: true},
		{Name: "a.txt", Size: 1024},
	}
	h := newTestHarness(runner)
	h.Press("enter")

	view := h.View()
	for _, want := range []string{"gdrive: | Connected", "[docs]", "a.txt", "1.0 kB"} {
		if !contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewEmptyDirectory(t *testing.T) {
	h := newTestHarness(newFakeRunner("gdrive"))
	h.Press("enter")
	if !contains(h.View(), "(empty)") {
		t.Fatalf("expected empty placeholder:\n%s", h.View())
	}
}

func TestViewScrollsToSelection(t *testing.T) {
	names := []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "r9"}
	runner := newFakeRunner(names...)
	m := NewModel(Options{Runner: runner, Remotes: names, Width: 80, Height: 10})
	h := NewHarness(m)
	for i := 0; i < 9; i++ {
		h.Press("j")
	}
	view := h.View()
	if !contains(view, "> r9") || contains(view, "r0") {
		t.Fatalf("expected list scrolled to the last remote:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines > 10 {
		t.Fatalf("expected view to fit the terminal height, got %d lines", lines)
	}
}

func TestViewConfirmModal(t *testing.T) {
	h := newTestHarness(newFakeRunner("gdrive"))
	h.Press("d")
	view := h.View()
	for _, want := range []string{"Delete Remote", "Delete 'gdrive'?", "Yes", "No", "Esc Cancel"} {
		if !contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewFormScrollsLongValues(t *testing.T) {
	h := newTestHarness(newFakeRunner())
	h.Press("a", "tab", "tab")
	h.Type("/a/very/long/path/that/goes/on/and/on")
	view := h.View()
	if !contains(view, "goes/on/and/on") || contains(view, "/a/very/long") {
		t.Fatalf("expected the path scrolled to its end:\n%s", view)
	}
	if !contains(view, "Create Remote") {
		t.Fatalf("expected form title:\n%s", view)
	}
}

func TestViewFormShowsError(t *testing.T) {
	h := newTestHarness(newFakeRunner())
	h.Press("a", "enter")
	if !contains(h.View(), "Name and Type are required") {
		t.Fatalf("expected validation error in view:\n%s", h.View())
	}
}

func TestViewFormSuggestsTypes(t *testing.T) {
	h := newTestHarness(newFakeRunner())
	h.Press("a", "tab")
	h.Press("backspace", "backspace", "backspace", "backspace", "backspace")
	h.Type("dr")
	if !contains(h.View(), "drive, dropbox") {
		t.Fatalf("expected type suggestions:\n%s", h.View())
	}
}
