package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/entities"
)

const testHolder = "0x00000000000000000000000000000000000e5c70"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
[escrow]
holder_address = "`+testHolder+`"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "talent-stake.db", cfg.Database.Path)
	assert.Equal(t, uint64(80), cfg.Escrow.ReferrerSharePercent)
	assert.True(t, cfg.Escrow.OneReferralPerReferrer)
	assert.Equal(t, MirrorStoreDatabase, cfg.Mirror.Store)
	assert.Equal(t, "@every 5s", cfg.Mirror.SyncSchedule)
	assert.Equal(t, "@every 1h", cfg.Mirror.ReconcileSchedule)
	assert.Equal(t, 100, cfg.Mirror.BatchSize)
	assert.Equal(t, ":8080", cfg.HTTP.ListenAddr)
	assert.False(t, cfg.ChainEnabled())

	stake, err := cfg.Escrow.Stake()
	require.NoError(t, err)
	assert.Equal(t, entities.NewAmount(500_000), stake)

	holder, err := cfg.Escrow.Holder()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testHolder), holder)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[database]
driver = "postgres"
host = "db.internal"
port = "6432"
user = "ledger"
password = "secret"
dbName = "talent"

[escrow]
holder_address = "`+testHolder+`"
stake_amount = "750000"
referrer_share_percent = 70
one_referral_per_referrer = false

[slack]
webhook_url = "https://hooks.slack.test/abc"
mention_users = ["U1", "U2"]

[chain]
rpc_addr = "http://localhost:8545"
token_address = "0x0000000000000000000000000000000000000001"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=db.internal port=6432 user=ledger password=secret dbname=talent sslmode=disable",
		cfg.Database.GetDatabaseDSN())
	assert.Equal(t, uint64(70), cfg.Escrow.ReferrerSharePercent)
	assert.False(t, cfg.Escrow.OneReferralPerReferrer)
	assert.Equal(t, []string{"U1", "U2"}, cfg.Slack.MentionUsers)
	assert.True(t, cfg.ChainEnabled())

	stake, err := cfg.Escrow.Stake()
	require.NoError(t, err)
	assert.Equal(t, entities.NewAmount(750_000), stake)
}

func TestLoadConfig_Environment(t *testing.T) {
	path := writeConfig(t, `
[escrow]
holder_address = "`+testHolder+`"
`)
	t.Setenv("TALENT_ESCROW_REFERRER_SHARE_PERCENT", "75")
	t.Setenv("TALENT_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(75), cfg.Escrow.ReferrerSharePercent)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing holder",
			body:    ``,
			wantErr: "escrow.holder_address is required",
		},
		{
			name: "bad holder",
			body: `
[escrow]
holder_address = "not-an-address"
`,
			wantErr: "not a valid address",
		},
		{
			name: "zero stake",
			body: `
[escrow]
holder_address = "` + testHolder + `"
stake_amount = "0"
`,
			wantErr: "stake_amount must be positive",
		},
		{
			name: "share out of range",
			body: `
[escrow]
holder_address = "` + testHolder + `"
referrer_share_percent = 100
`,
			wantErr: "referrer_share_percent",
		},
		{
			name: "unknown driver",
			body: `
[database]
driver = "mysql"

[escrow]
holder_address = "` + testHolder + `"
`,
			wantErr: "unsupported database.driver",
		},
		{
			name: "postgres without host",
			body: `
[database]
driver = "postgres"

[escrow]
holder_address = "` + testHolder + `"
`,
			wantErr: "database.host is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestGetDatabaseDSN_SQLite(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverSQLite, Path: "/var/lib/talent/ledger.db"}
	assert.Equal(t, "file:/var/lib/talent/ledger.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.GetDatabaseDSN())
}

func TestLoadConfig_MirrorStore(t *testing.T) {
	path := writeConfig(t, `
[escrow]
holder_address = "`+testHolder+`"

[mirror]
store = "memory"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, MirrorStoreMemory, cfg.Mirror.Store)

	path = writeConfig(t, `
[escrow]
holder_address = "`+testHolder+`"

[mirror]
store = "redis"
`)
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported mirror.store")
}
