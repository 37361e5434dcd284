package util

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SHA256Bytes returns the hex digest of data.
func SHA256Bytes(data []byte) string {
	sum, _ := SHA256Reader(bytes.NewReader(data))
	return sum
}

func SHA256Reader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
