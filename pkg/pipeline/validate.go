package pipeline

import (
	"github.com/robertoranon/gltf-transform/pkg/core/property"
	"github.com/robertoranon/gltf-transform/pkg/document"
	"github.com/robertoranon/gltf-transform/pkg/errors"
)

// ValidateDocument checks a loaded document for structural problems.
//
// It verifies graph index integrity and extension identifier conventions.
// Problems are reported as INVALID_DOCUMENT errors.
func ValidateDocument(d *document.Document) error {
	if err := d.Graph().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "graph integrity")
	}

	for _, p := range d.Properties() {
		ext, ok := p.(property.ExtensionProperty)
		if !ok {
			continue
		}
		if err := errors.ValidateExtensionID(ext.ExtensionID()); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err,
				"extension %q on property %q", ext.ExtensionID(), p.Name())
		}
	}

	return nil
}
