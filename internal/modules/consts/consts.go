package consts

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
)

func (f Format) String() string {
	return string(f)
}

// Extension returns the artifact filename extension, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

type ResizeMode string

const (
	// ResizeFit keeps the aspect ratio and never grows past the source.
	ResizeFit ResizeMode = "fit"
	// ResizeStretch forces the exact requested dimensions.
	ResizeStretch ResizeMode = "stretch"
)

func (m ResizeMode) String() string {
	return string(m)
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

type SortField string

const (
	SortCreatedAt        SortField = "createdAt"
	SortOriginalSize     SortField = "originalSize"
	SortCompressedSize   SortField = "compressedSize"
	SortCompressionRatio SortField = "compressionRatio"
)

// Column maps the API sort field onto the backing column.
func (s SortField) Column() string {
	switch s {
	case SortOriginalSize:
		return "original_size"
	case SortCompressedSize:
		return "compressed_size"
	case SortCompressionRatio:
		return "compression_ratio"
	default:
		return "created_at"
	}
}

func ValidSortField(s string) bool {
	switch SortField(s) {
	case SortCreatedAt, SortOriginalSize, SortCompressedSize, SortCompressionRatio:
		return true
	}
	return false
}
