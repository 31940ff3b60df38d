package compress

import "testing"

func TestSnappyCodecRoundtrip(t *testing.T) {
	roundtrip(t, NewSnappyCodec(), []byte("snappy payload snappy payload snappy payload"))
}

func TestSnappyCodecEmpty(t *testing.T) {
	roundtrip(t, NewSnappyCodec(), []byte{})
}
