package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"golang.org/x/exp/constraints"
)

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp[A constraints.Integer](v, lo, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// WriteGob encodes data with gob and writes it to filename.
func WriteGob(filename string, data any) error {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("could not encode %v: %w", filename, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open %v: %w", filename, err)
	}
	defer f.Close()

	if _, err = f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write failed for %v: %w", filename, err)
	}
	return nil
}

// ReadGob decodes a gob file written by WriteGob.
func ReadGob[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, fmt.Errorf("could not open %v: %w", path, err)
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, fmt.Errorf("could not decode %v: %w", path, err)
	}
	return data, nil
}
