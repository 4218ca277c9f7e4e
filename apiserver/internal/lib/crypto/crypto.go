package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// ShortSHA returns a truncated, hex encoded SHA256 sum of the input, salted
// when a salt is supplied. It is used for values, like OAuth2 state, that are
// looked up later but should never be stored in the clear.
func ShortSHA(salt, input string) string {
	if salt != "" {
		input = fmt.Sprintf("%s:%s", salt, input)
	}
	sum := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", sum)[0:54]
}

// NewToken returns a random alphanumeric string of the specified length.
func NewToken(tokenLength int) string {
	const tokenChars = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789"
	max := big.NewInt(int64(len(tokenChars)))
	b := make([]byte, tokenLength)
	for i := 0; i < tokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		b[i] = tokenChars[n.Int64()]
	}
	return string(b)
}
