package elementmap

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/ckacc/hashfn"
)

func TestFromBytesReducesModN(t *testing.T) {
	n := big.NewInt(97)
	got := FromBytes(hashfn.SHA256, []byte("a"), n)
	d := sha256.Sum256([]byte("a"))
	want := new(big.Int).Mod(new(big.Int).SetBytes(d[:]), n)
	require.Equal(t, want, got.BigInt())
}

func TestFromStringMatchesFromBytes(t *testing.T) {
	n := big.NewInt(10007)
	require.True(t, FromString(hashfn.SHA256, "hello", n).Equal(FromBytes(hashfn.SHA256, []byte("hello"), n)))
}

func TestFromBytesDeterministic(t *testing.T) {
	n := big.NewInt(10007)
	a := FromBytes(hashfn.SHA256, []byte("x"), n)
	b := FromBytes(hashfn.SHA256, []byte("x"), n)
	require.True(t, a.Equal(b))
}
