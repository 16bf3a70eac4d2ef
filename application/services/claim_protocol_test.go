package services

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimTokenGenerator_Derivation(t *testing.T) {
	nonce := bytes.Repeat([]byte{0xab}, claimNonceSize)
	at := time.Unix(1_700_000_000, 42)
	gen := &claimTokenGenerator{random: bytes.NewReader(nonce)}

	hash, err := gen.Generate(9, at)
	require.NoError(t, err)

	var id, ts [8]byte
	binary.BigEndian.PutUint64(id[:], 9)
	binary.BigEndian.PutUint64(ts[:], uint64(at.UnixNano()))
	assert.Equal(t, crypto.Keccak256Hash(id[:], nonce, ts[:]), hash)
}

func TestClaimTokenGenerator_ShortRandomness(t *testing.T) {
	gen := &claimTokenGenerator{random: bytes.NewReader([]byte{1, 2, 3})}

	_, err := gen.Generate(1, time.Now())
	assert.Error(t, err)
}

func TestClaimTokenGenerator_Unique(t *testing.T) {
	gen := NewClaimTokenGenerator()
	at := time.Now()
	seen := make(map[common.Hash]bool)
	for i := 0; i < 100; i++ {
		hash, err := gen.Generate(1, at)
		require.NoError(t, err)
		assert.NotEqual(t, common.Hash{}, hash)
		assert.False(t, seen[hash])
		seen[hash] = true
	}
}
