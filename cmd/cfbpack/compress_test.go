package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func TestCompressOutputNone(t *testing.T) {
	raw := []byte("container image")
	out, err := compressOutput(compNone, raw)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, raw) {
		t.Fatal("compNone modified the image")
	}
}

func TestCompressOutputUnknown(t *testing.T) {
	if _, err := compressOutput("gzip", []byte("x")); err == nil {
		t.Fatal("expected error for unknown codec")
	}
}

func TestCompressOutputRoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte("compound file sector "), 200)

	t.Run(compZstd, func(t *testing.T) {
		out, err := compressOutput(compZstd, raw)
		if err != nil {
			t.Fatal(err)
		}
		dec, err := zstd.NewReader(nil)
		if err != nil {
			t.Fatal(err)
		}
		defer dec.Close()
		got, err := dec.DecodeAll(out, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, raw) {
			t.Fatal("zstd round trip mismatch")
		}
	})

	t.Run(compLZ4, func(t *testing.T) {
		out, err := compressOutput(compLZ4, raw)
		if err != nil {
			t.Fatal(err)
		}
		got, err := io.ReadAll(lz4.NewReader(bytes.NewReader(out)))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, raw) {
			t.Fatal("lz4 round trip mismatch")
		}
	})

	t.Run(compBR, func(t *testing.T) {
		out, err := compressOutput(compBR, raw)
		if err != nil {
			t.Fatal(err)
		}
		got, err := io.ReadAll(brotli.NewReader(bytes.NewReader(out)))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, raw) {
			t.Fatal("brotli round trip mismatch")
		}
	})
}
