package hashes_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-hashes/hashes"
)

func TestSumSha256(t *testing.T) {
	vectors := []struct {
		input  string
		output string
	}{
		{
			"",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			"abc",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, v := range vectors {
		got := hashes.SumSha256([]byte(v.input))
		if got.String() != v.output {
			t.Errorf("sha256(%q): got %s, want %s", v.input, got, v.output)
		}

		engine := hashes.NewSha256Engine()
		engine.Write([]byte(v.input))
		assert.Equal(t, got, engine.Sum())
	}
}

func TestSha256MatchesChainhash(t *testing.T) {
	inputs := []string{"", "a", "abc", "the quick brown fox"}
	for _, s := range inputs {
		want := chainhash.HashB([]byte(s))
		assert.Equal(t, want, hashes.SumSha256([]byte(s)).Bytes())
	}
}

func TestSha256FromSlice(t *testing.T) {
	digest := hashes.SumSha256([]byte("abc"))
	restored, err := hashes.Sha256FromSlice(digest.Bytes())
	require.NoError(t, err)
	assert.Equal(t, digest, restored)

	_, err = hashes.Sha256FromSlice(make([]byte, 20))
	var lenErr hashes.InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(
		t,
		hashes.InvalidLengthError{Expected: 32, Actual: 20},
		lenErr,
	)
}
