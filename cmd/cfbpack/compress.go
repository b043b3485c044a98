package main

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	compNone = "none"
	compZstd = "zstd"
	compLZ4  = "lz4"
	compBR   = "br"
)

// compressOutput encodes the finished container image with the chosen
// codec. compNone returns raw unchanged.
func compressOutput(comp string, raw []byte) ([]byte, error) {
	switch comp {
	case compNone:
		return raw, nil
	case compZstd:
		return zstdCompress(raw)
	case compLZ4:
		return lz4Compress(raw)
	case compBR:
		return brotliCompress(raw)
	default:
		return nil, fmt.Errorf("unknown compression %q", comp)
	}
}

func zstdCompress(in []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

func lz4Compress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(in); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err := bw.Write(in); err != nil {
		_ = bw.Close()
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
