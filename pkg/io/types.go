package io

import (
	"fmt"

	"github.com/robertoranon/gltf-transform/pkg/core/graph"
	"github.com/robertoranon/gltf-transform/pkg/core/property"
	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/errors"
)

// Snapshot is the canonical serialization format for documents. Used for
// file export, the HTTP surface, and snapshot stores.
//
// The format is human-readable and round-trips structurally: import
// rebuilds the same properties and links, though the rebuilt graph mints
// fresh IDs, so a re-export carries new id fields. Hash the snapshot as
// decoded when identity across loads matters. Properties appear in
// creation order; links in creation order per owning property.
type Snapshot struct {
	Properties []Property `json:"properties" bson:"properties"`
	Links      []Link     `json:"links" bson:"links"`
}

// Property is the serialized form of a single property node.
type Property struct {
	ID          string         `json:"id" bson:"id"`
	Type        string         `json:"type" bson:"type"`
	Name        string         `json:"name,omitempty" bson:"name,omitempty"`
	Extras      map[string]any `json:"extras,omitempty" bson:"extras,omitempty"`
	ExtensionID string         `json:"extension,omitempty" bson:"extension,omitempty"`
}

// Link is the serialized form of a directed reference between properties.
type Link struct {
	Parent string `json:"parent" bson:"parent"`
	Child  string `json:"child" bson:"child"`
	Name   string `json:"name" bson:"name"`
	Kind   string `json:"kind,omitempty" bson:"kind,omitempty"`
}

// FromDocument converts a document to its serialization format.
func FromDocument(d *document.Document) Snapshot {
	props := d.Properties()
	out := Snapshot{Properties: make([]Property, len(props))}

	for i, p := range props {
		rec := Property{
			ID:     p.GraphID().String(),
			Type:   string(p.PropertyType()),
			Name:   p.Name(),
			Extras: p.Extras(),
		}
		if ext, ok := p.(property.ExtensionProperty); ok {
			rec.ExtensionID = ext.ExtensionID()
		}
		out.Properties[i] = rec

		for _, l := range d.Graph().ChildLinks(p) {
			out.Links = append(out.Links, Link{
				Parent: l.ParentID().String(),
				Child:  l.ChildID().String(),
				Name:   l.Name(),
				Kind:   l.Kind(),
			})
		}
	}
	return out
}

// ToDocument rebuilds a document from its serialization format.
// Returns an INVALID_DOCUMENT error when the snapshot names an unknown
// property type, is missing its root, or contains a dangling link.
func ToDocument(s Snapshot) (*document.Document, error) {
	d := document.New()
	g := d.Graph()

	byID := make(map[string]property.Property, len(s.Properties))
	for _, rec := range s.Properties {
		p, err := revive(g, d, rec)
		if err != nil {
			return nil, err
		}
		byID[rec.ID] = p
	}

	for _, l := range s.Links {
		parent, ok := byID[l.Parent]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "link %q: unknown parent %s", l.Name, l.Parent)
		}
		child, ok := byID[l.Child]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "link %q: unknown child %s", l.Name, l.Child)
		}
		if _, err := g.Link(l.Name, l.Kind, parent, child); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "link %q", l.Name)
		}
	}
	return d, nil
}

// revive constructs the in-memory node for one serialized property. Nodes
// are created directly on the graph, not through the factory, so the
// snapshot's own root links are authoritative.
func revive(g *graph.Graph, d *document.Document, rec Property) (property.Property, error) {
	var p property.Property
	switch property.Type(rec.Type) {
	case property.TypeRoot:
		p = d.Root()
		if rec.Name != "" {
			if err := p.SetName(rec.Name); err != nil {
				return nil, fmt.Errorf("set name: %w", err)
			}
		}
	case property.TypeScene:
		p = property.NewScene(g, rec.Name)
	case property.TypeNode:
		p = property.NewNode(g, rec.Name)
	case property.TypeMesh:
		p = property.NewMesh(g, rec.Name)
	case property.TypeMaterial:
		p = property.NewMaterial(g, rec.Name)
	case property.TypeTexture:
		p = property.NewTexture(g, rec.Name)
	case property.TypeExtension:
		if err := errors.ValidateExtensionID(rec.ExtensionID); err != nil {
			return nil, err
		}
		tok, ok := property.LookupExtension(rec.ExtensionID)
		if !ok {
			var err error
			if tok, err = property.RegisterExtension(rec.ExtensionID); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidExtension, err, "register %q", rec.ExtensionID)
			}
		}
		p = property.NewExtension(g, tok, rec.Name)
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown property type: %q", rec.Type)
	}

	if rec.Extras != nil {
		if err := p.SetExtras(rec.Extras); err != nil {
			return nil, fmt.Errorf("set extras: %w", err)
		}
	}
	return p, nil
}
