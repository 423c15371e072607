// Package random generates random string suffixes for stored filenames.
package random

import (
	"crypto/rand"
	"math/big"
)

const alphanum = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seq generates a random alphanumeric string of length n.
func Seq(n int) string {
	runes := make([]byte, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphanum))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		runes[i] = alphanum[idx.Int64()]
	}
	return string(runes)
}
