package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"io/ioutil"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// readInput reads file, or r for "-", decompressing zstd frames and parsing
// hex text if asked to
func readInput(file string, r io.Reader, isHex bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if file == "-" {
		data, err = ioutil.ReadAll(r)
	} else {
		data, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read input")
	}

	if bytes.HasPrefix(data, zstdMagic) {
		if data, err = decompress(data); err != nil {
			return nil, err
		}
	}

	if isHex {
		text := strings.Join(strings.Fields(string(data)), "")
		if data, err = hex.DecodeString(text); err != nil {
			return nil, errors.Wrap(err, "input is not hex")
		}
	}

	return data, nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decompress input")
	}
	return out, nil
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func writeOutput(file string, w io.Writer, data []byte) error {
	if file == "" {
		_, err := io.WriteString(w, hex.EncodeToString(data)+"\n")
		return err
	}
	return errors.Wrap(ioutil.WriteFile(file, data, 0644), "cannot write output")
}
