package commands

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
)

func TestParseID(t *testing.T) {
	id, err := parseID("job id", "42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseID("job id", bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("bounty", "5000000")
	require.NoError(t, err)
	assert.Equal(t, entities.NewAmount(5_000_000), amount)

	_, err = parseAmount("bounty", "0")
	assert.Error(t, err)
	_, err = parseAmount("bounty", "1.5")
	assert.Error(t, err)
}

func TestParseAddressAndHash(t *testing.T) {
	addr, err := parseAddress("target", "0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xaa"), addr)

	_, err = parseAddress("target", "0xzz")
	assert.Error(t, err)

	hash := common.HexToHash("0x01")
	parsed, err := parseHash("claim hash", hash.Hex())
	require.NoError(t, err)
	assert.Equal(t, hash, parsed)

	_, err = parseHash("claim hash", "0x01")
	assert.Error(t, err)
}

func TestCallerPrincipal(t *testing.T) {
	app := NewApp()
	t.Setenv(PrincipalEnv, "")

	_, err := app.CallerPrincipal()
	assert.Error(t, err)

	t.Setenv(PrincipalEnv, "0x00000000000000000000000000000000000000bb")
	principal, err := app.CallerPrincipal()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xbb"), principal)

	app.Principal = "0x00000000000000000000000000000000000000cc"
	principal, err = app.CallerPrincipal()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xcc"), principal)
}
