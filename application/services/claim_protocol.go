package services

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"talent-stake/domain/interfaces"
)

const claimNonceSize = 32

// claimTokenGenerator derives claim hashes as keccak256(referralID || nonce || time).
type claimTokenGenerator struct {
	random io.Reader
}

// NewClaimTokenGenerator creates a generator backed by crypto/rand.
func NewClaimTokenGenerator() interfaces.ClaimTokenGenerator {
	return &claimTokenGenerator{random: rand.Reader}
}

// Generate returns a fresh claim hash for the referral.
func (g *claimTokenGenerator) Generate(referralID uint64, at time.Time) (common.Hash, error) {
	nonce := make([]byte, claimNonceSize)
	if _, err := io.ReadFull(g.random, nonce); err != nil {
		return common.Hash{}, fmt.Errorf("read claim nonce: %w", err)
	}

	var id, ts [8]byte
	binary.BigEndian.PutUint64(id[:], referralID)
	binary.BigEndian.PutUint64(ts[:], uint64(at.UnixNano()))

	return crypto.Keccak256Hash(id[:], nonce, ts[:]), nil
}
