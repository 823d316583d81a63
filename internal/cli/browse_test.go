package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robertoranon/gltf-transform/pkg/document"
)

func buildBrowseModel(t *testing.T) BrowseModel {
	t.Helper()

	d := document.New()
	scene := d.CreateScene("main")
	node := d.CreateNode("body")
	if err := scene.AddChild(node); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	return NewBrowseModel(d, "scene.json")
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModelStartsAtRoot(t *testing.T) {
	m := buildBrowseModel(t)

	if m.Current != m.Doc.Root() {
		t.Error("browse should start at the document root")
	}
	if len(m.Trail) != 0 {
		t.Error("trail should start empty")
	}
}

func TestBrowseModelDescendAndReturn(t *testing.T) {
	m := buildBrowseModel(t)

	// Descend into the first root link (the scene).
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(BrowseModel)

	if m.Current == m.Doc.Root() {
		t.Fatal("enter should descend into a child")
	}
	if len(m.Trail) != 1 {
		t.Fatalf("trail length = %d, want 1", len(m.Trail))
	}

	// Return to the root.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(BrowseModel)

	if m.Current != m.Doc.Root() {
		t.Error("backspace should return to the root")
	}
	if len(m.Trail) != 0 {
		t.Error("trail should be empty again")
	}
}

func TestBrowseModelCursorBounds(t *testing.T) {
	m := buildBrowseModel(t)
	linkCount := len(m.links())

	// Cursor never moves past the last link.
	for range linkCount + 3 {
		next, _ := m.Update(keyMsg("j"))
		m = next.(BrowseModel)
	}
	if m.Cursor != linkCount-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor, linkCount-1)
	}

	// And never below zero.
	for range linkCount + 3 {
		next, _ := m.Update(keyMsg("k"))
		m = next.(BrowseModel)
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestBrowseModelView(t *testing.T) {
	m := buildBrowseModel(t)
	view := m.View()

	if !strings.Contains(view, "scene.json") {
		t.Errorf("view missing file name:\n%s", view)
	}
	if !strings.Contains(view, "scenes") {
		t.Errorf("view missing root link names:\n%s", view)
	}
}
