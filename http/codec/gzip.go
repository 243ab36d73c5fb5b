package codec

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

type gzipCodec struct{}

// NewGZIP returns the gzip codec.
func NewGZIP() Codec {
	return gzipCodec{}
}

func (gzipCodec) Token() string {
	return "gzip"
}

func (gzipCodec) Encode(body []byte) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, len(body)))

	w := gzip.NewWriter(buff)
	if _, err := w.Write(body); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
