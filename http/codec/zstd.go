package codec

import (
	"github.com/klauspost/compress/zstd"
)

type zstdCodec struct{}

// NewZSTD returns the zstd codec.
func NewZSTD() Codec {
	return zstdCodec{}
}

func (zstdCodec) Token() string {
	return "zstd"
}

func (zstdCodec) Encode(body []byte) ([]byte, error) {
	w, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}

	defer w.Close()

	return w.EncodeAll(body, make([]byte, 0, len(body))), nil
}
