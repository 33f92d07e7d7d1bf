package geoarrow

// Well-known metadata keys written to the Arrow schema of serialized
// geometry columns.
const (
	MetaLayout  = "geoarrow.layout"
	MetaVersion = "geoarrow.version"

	// LayoutDenseUnion is the only layout this package reads or writes.
	LayoutDenseUnion = "dense_union"

	// FormatVersion is the serialization format version.
	FormatVersion = "1"

	// ColumnName is the geometry field name in serialized schemas.
	ColumnName = "geometry"
)
