// Package property layers typed resource kinds over the reference graph.
//
// Every kind embeds a shared base that adds identity (name), opaque extras,
// and lifecycle operations (Detach, Dispose, ListParents) on top of the
// graph node. Kinds other than Root additionally participate in extension
// attachment: at most one [ExtensionProperty] per registered identifier per
// host, attached and looked up through [Token] handles.
//
// The graph remains the single source of truth for "who references whom";
// this package is a thin, typed façade over it. Typed accessors like
// [Material.SetBaseColorTexture] replace a single named link and never copy
// the referenced node, so one texture may serve arbitrarily many materials.
package property
