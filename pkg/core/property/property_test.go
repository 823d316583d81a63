package property

import (
	"errors"
	"testing"

	"github.com/robertoranon/gltf-transform/pkg/core/graph"
)

func TestNameAndExtras(t *testing.T) {
	g := graph.New()
	m := NewMaterial(g, "gold")

	if m.Name() != "gold" {
		t.Errorf("Name = %q, want gold", m.Name())
	}
	if err := m.SetName("brass"); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if m.Name() != "brass" {
		t.Errorf("Name = %q, want brass", m.Name())
	}

	if m.Extras() != nil {
		t.Errorf("Extras = %v, want nil", m.Extras())
	}
	if err := m.SetExtras(map[string]any{"author": "me"}); err != nil {
		t.Fatalf("SetExtras: %v", err)
	}
	// SetExtras replaces wholesale, it does not merge.
	if err := m.SetExtras(map[string]any{"rating": 5}); err != nil {
		t.Fatalf("SetExtras: %v", err)
	}
	if _, ok := m.Extras()["author"]; ok {
		t.Error("SetExtras merged instead of replacing")
	}
	if m.Extras()["rating"] != 5 {
		t.Errorf("Extras[rating] = %v, want 5", m.Extras()["rating"])
	}
}

func TestDetach(t *testing.T) {
	g := graph.New()
	root := NewRoot(g)
	matA := NewMaterial(g, "matA")
	matB := NewMaterial(g, "matB")
	tex := NewTexture(g, "tex")

	if _, err := g.Link("textures", string(TypeTexture), root, tex); err != nil {
		t.Fatalf("root link: %v", err)
	}
	for _, m := range []*Material{matA, matB} {
		if err := m.SetBaseColorTexture(tex); err != nil {
			t.Fatalf("SetBaseColorTexture: %v", err)
		}
	}
	if err := matA.SetNormalTexture(tex); err != nil {
		t.Fatalf("SetNormalTexture: %v", err)
	}

	if err := tex.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}

	// Only the root link survives.
	parents := tex.ListParents()
	if len(parents) != 1 || parents[0].PropertyType() != TypeRoot {
		types := make([]Type, len(parents))
		for i, p := range parents {
			types[i] = p.PropertyType()
		}
		t.Fatalf("parents after Detach = %v, want [Root]", types)
	}
	if matA.BaseColorTexture() != nil || matB.BaseColorTexture() != nil {
		t.Error("materials still reference detached texture")
	}
	if tex.Disposed() {
		t.Error("detached texture must stay alive")
	}
}

func TestDetachKeepsChildren(t *testing.T) {
	g := graph.New()
	root := NewRoot(g)
	scene := NewScene(g, "scene")
	node := NewNode(g, "node")
	mesh := NewMesh(g, "mesh")

	if _, err := g.Link("scenes", string(TypeScene), root, scene); err != nil {
		t.Fatalf("root link: %v", err)
	}
	if err := scene.AddChild(node); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := node.SetMesh(mesh); err != nil {
		t.Fatalf("SetMesh: %v", err)
	}

	if err := node.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if node.Mesh() != mesh {
		t.Error("detach dropped the node's own children")
	}
	if got := scene.Children(); len(got) != 0 {
		t.Errorf("scene children after detach = %d, want 0", len(got))
	}
}

func TestDisposeInvalidatesOperations(t *testing.T) {
	g := graph.New()
	m := NewMaterial(g, "doomed")
	tex := NewTexture(g, "tex")
	tok := MustRegisterExtension("VENDOR_dispose_test")

	if err := m.Dispose(); err != nil {
		t.Fatalf("Dispose: %v", err)
	}

	ops := map[string]error{
		"SetName":      m.SetName("x"),
		"SetExtras":    m.SetExtras(nil),
		"Detach":       m.Detach(),
		"Dispose":      m.Dispose(),
		"SetTexture":   m.SetBaseColorTexture(tex),
		"SetExtension": m.SetExtension(tok, NewExtension(g, tok, "")),
	}
	for name, err := range ops {
		if !errors.Is(err, graph.ErrInvalidState) {
			t.Errorf("%s on disposed node = %v, want ErrInvalidState", name, err)
		}
	}
	if got := m.ListParents(); len(got) != 0 {
		t.Errorf("ListParents on disposed node = %d entries, want 0", len(got))
	}
}

func TestSharedTextureIdentity(t *testing.T) {
	g := graph.New()
	matA := NewMaterial(g, "matA")
	matB := NewMaterial(g, "matB")
	tex := NewTexture(g, "shared")

	for _, m := range []*Material{matA, matB} {
		if err := m.SetBaseColorTexture(tex); err != nil {
			t.Fatalf("SetBaseColorTexture: %v", err)
		}
	}
	if matA.BaseColorTexture() != matB.BaseColorTexture() {
		t.Error("shared texture resolved to different identities")
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3 (no implicit copying)", g.NodeCount())
	}
}

func TestSetRefReplaces(t *testing.T) {
	g := graph.New()
	m := NewMaterial(g, "mat")
	t1 := NewTexture(g, "first")
	t2 := NewTexture(g, "second")

	if err := m.SetBaseColorTexture(t1); err != nil {
		t.Fatalf("SetBaseColorTexture: %v", err)
	}
	if err := m.SetBaseColorTexture(t2); err != nil {
		t.Fatalf("SetBaseColorTexture: %v", err)
	}

	if m.BaseColorTexture() != t2 {
		t.Error("replacement did not take effect")
	}
	if got := t1.ListParents(); len(got) != 0 {
		t.Errorf("replaced texture still has parents: %d", len(got))
	}
	if t1.Disposed() {
		t.Error("replaced texture must not be disposed")
	}

	if err := m.SetBaseColorTexture(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if m.BaseColorTexture() != nil {
		t.Error("clearing the slot did not remove the link")
	}
}

func TestScenarioDetachLeavesOutgoing(t *testing.T) {
	// matA -> tex1 survives matA.Detach(): detach only removes incoming
	// links, never a node's own references.
	g := graph.New()
	root := NewRoot(g)
	matA := NewMaterial(g, "matA")
	tex1 := NewTexture(g, "tex1")

	if _, err := g.Link("materials", string(TypeMaterial), root, matA); err != nil {
		t.Fatalf("root link: %v", err)
	}
	if err := matA.SetBaseColorTexture(tex1); err != nil {
		t.Fatalf("SetBaseColorTexture: %v", err)
	}

	parents := tex1.ListParents()
	if len(parents) != 1 || parents[0] != Property(matA) {
		t.Fatalf("tex1 parents = %d, want [matA]", len(parents))
	}

	if err := matA.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	parents = tex1.ListParents()
	if len(parents) != 1 || parents[0] != Property(matA) {
		t.Errorf("matA -> tex1 link did not survive matA.Detach()")
	}
}

func TestCloneNotImplemented(t *testing.T) {
	g := graph.New()
	tex := NewTexture(g, "tex")
	if _, err := tex.Clone(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Clone error = %v, want ErrNotImplemented", err)
	}
}

func TestMaterialClone(t *testing.T) {
	g := graph.New()
	m := NewMaterial(g, "original")
	tex := NewTexture(g, "tex")
	if err := m.SetBaseColorTexture(tex); err != nil {
		t.Fatalf("SetBaseColorTexture: %v", err)
	}
	if err := m.SetExtras(map[string]any{"doubleSided": true}); err != nil {
		t.Fatalf("SetExtras: %v", err)
	}

	p, err := m.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	clone := p.(*Material)

	if clone == m {
		t.Fatal("Clone returned the receiver")
	}
	if clone.Name() != "original" {
		t.Errorf("clone name = %q", clone.Name())
	}
	// Referenced resources are shared, not copied.
	if clone.BaseColorTexture() != tex {
		t.Error("clone does not share the texture")
	}
	if len(tex.ListParents()) != 2 {
		t.Errorf("texture parents = %d, want 2", len(tex.ListParents()))
	}
	// Extras are copied, not aliased.
	clone.Extras()["doubleSided"] = false
	if m.Extras()["doubleSided"] != true {
		t.Error("clone aliases the original's extras")
	}
}
