// Package srec reads Motorola S-record files the way the DSP563xx
// toolchain emits them (srec -S -R -A3): one record per whitespace
// delimited token, S0 carrying the memory space selector and S2 carrying
// 24-bit addressed data.
package srec

import (
	"bufio"
	"io"
)

// Reader yields one record token per call to Next. It makes a single
// forward pass over the input and cannot be rewound.
type Reader struct {
	s *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{s: s}
}

// Next returns the next whitespace-delimited token, or io.EOF once the
// input is exhausted. Tokens are not validated here; Parse decides what
// they mean.
func (r *Reader) Next() (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
