package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSHA256KnownVector(t *testing.T) {
	got := Hash("sha256", []byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(got))
}

func TestHashOutputSizes(t *testing.T) {
	input := []byte("accumulator")
	assert.Equal(t, 32, len(Hash("sha256", input)))
	assert.Equal(t, 64, len(Hash("sha512", input)))
	assert.Equal(t, 32, len(Hash("sha3-256", input)))
	assert.Equal(t, 64, len(Hash("sha3-512", input)))
	assert.Equal(t, 32, len(Hash("keccak256", input)))
	assert.Equal(t, 32, len(Hash("blake2b-256", input)))
	assert.Equal(t, 64, len(Hash("blake2b-512", input)))
}

func TestHashDomainSeparation(t *testing.T) {
	a := Hash("blake2b-256", []byte("domain-a/seed"))
	b := Hash("blake2b-256", []byte("domain-b/seed"))
	assert.NotEqual(t, a, b)
}

func TestHashUnknownType(t *testing.T) {
	assert.Nil(t, Hash("md5", []byte("no")))
}
