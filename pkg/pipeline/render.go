package pipeline

import (
	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/errors"
	gio "github.com/robertoranon/gltf-transform/pkg/io"
	"github.com/robertoranon/gltf-transform/pkg/render/nodelink"
)

// RenderDocument renders a document into every requested format.
// Formats share one DOT conversion, so asking for both "dot" and "svg"
// lays out the graph only once.
func RenderDocument(d *document.Document, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	needsDOT := false
	for _, f := range opts.Formats {
		if f == FormatDOT || f == FormatSVG {
			needsDOT = true
			break
		}
	}
	if needsDOT {
		dot = nodelink.ToDOT(d, opts.NodelinkOptions())
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			artifacts[format] = []byte(dot)
		case FormatSVG:
			svg, err := nodelink.RenderSVG(dot)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
			}
			artifacts[format] = svg
		case FormatJSON:
			data, err := gio.MarshalJSON(d)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal document")
			}
			artifacts[format] = data
		}
	}

	return artifacts, nil
}
