package hash

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash digests input with the named algorithm. Unknown names return nil.
func Hash(hashType string, input []byte) []byte {

	var bytes []byte

	switch hashType {
	case "sha256":
		h := sha256.New()
		h.Write(input)
		bytes = h.Sum(nil)
	case "sha512":
		h := sha512.New()
		h.Write(input)
		bytes = h.Sum(nil)
	case "sha3-256":
		h := sha3.New256()
		h.Write(input)
		bytes = h.Sum(nil)
	case "sha3-512":
		h := sha3.New512()
		h.Write(input)
		bytes = h.Sum(nil)
	case "keccak256":
		h := sha3.NewLegacyKeccak256()
		h.Write(input)
		bytes = h.Sum(nil)
	case "blake2b-256":
		sum := blake2b.Sum256(input)
		bytes = sum[:]
	case "blake2b-512":
		sum := blake2b.Sum512(input)
		bytes = sum[:]
	default:
		return nil
	}

	return bytes
}
