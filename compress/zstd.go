package compress

// ZStandardCodec backs "org.apache.hadoop.io.compress.ZStandardCodec". Its
// Compress/DecompressStream methods are implemented in zstd_pure.go (pure
// Go, klauspost/compress/zstd), which is compiled in every build with or
// without cgo. zstd_cgo.go (cgo, valyala/gozstd) mirrors the teacher's
// cgo/pure-Go split but is compiled only under the "nobuild" tag, which in
// turn excludes zstd_pure.go.
type ZStandardCodec struct{}

var _ Codec = ZStandardCodec{}

// NewZStandardCodec creates a ZStandardCodec.
func NewZStandardCodec() ZStandardCodec {
	return ZStandardCodec{}
}

func init() {
	Register("org.apache.hadoop.io.compress.ZStandardCodec", func() Codec { return NewZStandardCodec() })
}
