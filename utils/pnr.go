package utils

import (
	"crypto/rand"
)

const pnrCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePNR returns a booking reference of n characters drawn from [A-Z0-9].
func GeneratePNR(n int) (string, error) {
	code := make([]byte, n)
	if _, err := rand.Read(code); err != nil {
		return "", err
	}
	for i := 0; i < n; i++ {
		code[i] = pnrCharset[int(code[i])%len(pnrCharset)]
	}
	return string(code), nil
}
