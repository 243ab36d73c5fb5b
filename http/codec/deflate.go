package codec

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

const deflateLevel = 5

type deflateCodec struct{}

// NewDeflate returns the deflate codec.
func NewDeflate() Codec {
	return deflateCodec{}
}

func (deflateCodec) Token() string {
	return "deflate"
}

func (deflateCodec) Encode(body []byte) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, len(body)))

	w, err := flate.NewWriter(buff, deflateLevel)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(body); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
