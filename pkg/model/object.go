package model

// NamedObject ties a document node to its storage row.
type NamedObject struct {
	ID   int64     // rowid in named_objects; 0 until persisted.
	Path ModelPath // canonical location in the document tree.
}

// Name returns the object's final path segment, the zero Segment for the
// root object. The name is derived from the path and never stored
// separately; a path change (an explicit move) renames the object with it.
func (o NamedObject) Name() Segment {
	return o.Path.Name()
}
