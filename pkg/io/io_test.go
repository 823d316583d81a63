package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/robertoranon/gltf-transform/pkg/core/property"
	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/errors"
)

var tokAtlas = property.MustRegisterExtension("VENDOR_io_atlas")

func buildDocument(t *testing.T) *document.Document {
	t.Helper()
	d := document.New()

	scene := d.CreateScene("main")
	node := d.CreateNode("pedestal")
	mesh := d.CreateMesh("pedestal-geo")
	mat := d.CreateMaterial("marble")
	tex := d.CreateTexture("marble-base")

	if err := scene.AddChild(node); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := node.SetMesh(mesh); err != nil {
		t.Fatalf("SetMesh: %v", err)
	}
	if err := mesh.SetMaterial(mat); err != nil {
		t.Fatalf("SetMaterial: %v", err)
	}
	if err := mat.SetBaseColorTexture(tex); err != nil {
		t.Fatalf("SetBaseColorTexture: %v", err)
	}
	if err := mat.SetExtras(map[string]any{"doubleSided": true}); err != nil {
		t.Fatalf("SetExtras: %v", err)
	}

	ext := d.CreateExtension(tokAtlas, "atlas")
	if err := mat.SetExtension(tokAtlas, ext); err != nil {
		t.Fatalf("SetExtension: %v", err)
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	d := buildDocument(t)

	data, err := MarshalJSON(d)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	restored, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got, want := restored.Graph().NodeCount(), d.Graph().NodeCount(); got != want {
		t.Errorf("NodeCount = %d, want %d", got, want)
	}
	if got, want := restored.Graph().LinkCount(), d.Graph().LinkCount(); got != want {
		t.Errorf("LinkCount = %d, want %d", got, want)
	}

	mats := restored.Materials()
	if len(mats) != 1 || mats[0].Name() != "marble" {
		t.Fatalf("Materials = %d entries", len(mats))
	}
	mat := mats[0]
	if tex := mat.BaseColorTexture(); tex == nil || tex.Name() != "marble-base" {
		t.Error("texture reference lost in round trip")
	}
	if mat.Extras()["doubleSided"] != true {
		t.Errorf("extras lost in round trip: %v", mat.Extras())
	}
	if ext := mat.GetExtension(tokAtlas); ext == nil || ext.ExtensionID() != "VENDOR_io_atlas" {
		t.Error("extension attachment lost in round trip")
	}

	scenes := restored.Scenes()
	if len(scenes) != 1 || len(scenes[0].Children()) != 1 {
		t.Fatal("scene hierarchy lost in round trip")
	}
	if mesh := scenes[0].Children()[0].Mesh(); mesh == nil || mesh.Material() != mat {
		t.Error("node -> mesh -> material chain lost in round trip")
	}
}

func TestDeterministicOutput(t *testing.T) {
	d := buildDocument(t)

	first, err := MarshalJSON(d)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	second, err := MarshalJSON(d)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated export produced different bytes")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "Malformed",
			input:    "{not json",
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name: "UnknownType",
			input: `{"properties":[{"id":"a","type":"Blob"}],"links":[]}`,
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name: "DanglingLink",
			input: `{"properties":[{"id":"a","type":"Mesh"}],
				"links":[{"parent":"a","child":"missing","name":"material"}]}`,
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name: "BadExtensionID",
			input: `{"properties":[{"id":"a","type":"Extension","extension":"lowercase_bad"}],"links":[]}`,
			wantCode: errors.ErrCodeInvalidExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadJSON succeeded on invalid input")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %q, want %q (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestImportExportFiles(t *testing.T) {
	d := buildDocument(t)
	path := t.TempDir() + "/scene.json"

	if err := ExportJSON(d, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	restored, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if restored.Graph().NodeCount() != d.Graph().NodeCount() {
		t.Error("file round trip lost properties")
	}

	if _, err := ImportJSON(t.TempDir() + "/absent.json"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	// ImportSnapshot keeps the file's property IDs, unlike rebuilding,
	// which mints fresh ones. Content hashes rely on this.
	snap, err := ImportSnapshot(path)
	if err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}
	want := FromDocument(d)
	for i, p := range snap.Properties {
		if p.ID != want.Properties[i].ID {
			t.Errorf("property %d: ID = %s, want %s from file", i, p.ID, want.Properties[i].ID)
		}
	}
}
