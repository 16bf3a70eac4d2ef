//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const (
	creator   = "0x1000000000000000000000000000000000000001"
	referrer  = "0x2000000000000000000000000000000000000002"
	candidate = "0x3000000000000000000000000000000000000003"
	holder    = "0x00000000000000000000000000000000000e5c70"
)

type binary struct {
	t      *testing.T
	path   string
	config string
}

func (b binary) run(args ...string) []byte {
	b.t.Helper()
	cmd := exec.Command(b.path, append([]string{"--config", b.config}, args...)...)
	cmd.Env = append(os.Environ(), "TALENT_PRINCIPAL=")
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			b.t.Logf("stderr: %s", exitErr.Stderr)
		}
	}
	require.NoError(b.t, err, "talentstake %v", args)
	return output
}

func TestReferralLifecycle_E2E(t *testing.T) {
	// Skip if not in E2E mode
	if os.Getenv("RUN_E2E_TESTS") != "true" {
		t.Skip("Skipping E2E test. Set RUN_E2E_TESTS=true to run")
	}

	dir := t.TempDir()

	// Build the binary
	binPath := filepath.Join(dir, "talentstake")
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../cmd/talentstake")
	out, err := buildCmd.CombinedOutput()
	require.NoError(t, err, string(out))

	// Create test config
	configPath := filepath.Join(dir, "config.toml")
	configContent := `
log_level = "warn"

[database]
driver = "sqlite"
path = "` + filepath.ToSlash(filepath.Join(dir, "ledger.db")) + `"

[escrow]
holder_address = "` + holder + `"
stake_amount = "500000"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	bin := binary{t: t, path: binPath, config: configPath}

	bin.run("migrate")
	bin.run("token", "fund", creator, "5000000")
	bin.run("token", "approve", "5000000", "--principal", creator)
	bin.run("token", "fund", referrer, "500000")
	bin.run("token", "approve", "500000", "--principal", referrer)
	bin.run("job", "create", "Staff engineer", "5000000", "--principal", creator)

	var staked struct {
		ClaimHash string `json:"claim_hash"`
	}
	require.NoError(t, json.Unmarshal(bin.run("referral", "stake", "1", "Mentored me for years", "--principal", referrer), &staked))
	require.NotEmpty(t, staked.ClaimHash)

	bin.run("referral", "claim", staked.ClaimHash, "--principal", candidate)
	bin.run("referral", "adjudicate", "1", "spam", "--principal", creator)

	t.Run("spam stake grows the pot", func(t *testing.T) {
		var view struct {
			TotalPot string `json:"total_pot"`
		}
		require.NoError(t, json.Unmarshal(bin.run("job", "show", "1"), &view))
		assert.Equal(t, "5500000", view.TotalPot)
	})

	t.Run("export writes a yaml snapshot", func(t *testing.T) {
		exportPath := filepath.Join(dir, "ledger.yaml")
		bin.run("export", exportPath)

		raw, err := os.ReadFile(exportPath)
		require.NoError(t, err)

		var snapshot struct {
			EscrowBalance string `yaml:"escrow_balance"`
			Jobs          []struct {
				TotalPot string `yaml:"total_pot"`
			} `yaml:"jobs"`
		}
		require.NoError(t, yaml.Unmarshal(raw, &snapshot))
		assert.Equal(t, "5500000", snapshot.EscrowBalance)
		require.Len(t, snapshot.Jobs, 1)
	})

	t.Run("mirror catches up", func(t *testing.T) {
		bin.run("mirror", "sync")

		var projected struct {
			Job struct {
				TotalPot string `json:"total_pot"`
				Version  uint64 `json:"version"`
			} `json:"job"`
		}
		require.NoError(t, json.Unmarshal(bin.run("mirror", "show", "1"), &projected))
		assert.Equal(t, "5500000", projected.Job.TotalPot)
	})
}
