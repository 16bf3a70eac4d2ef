package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
	"talent-stake/domain/errors"
	"talent-stake/test/helpers"
)

type cliFixture struct {
	t          *testing.T
	app        *App
	configPath string
	out        *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Setenv(PrincipalEnv, "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := `
log_level = "error"

[database]
driver = "sqlite"
path = "` + filepath.ToSlash(filepath.Join(dir, "ledger.db")) + `"

[escrow]
holder_address = "` + helpers.RandomAddress().Hex() + `"
stake_amount = "500000"
referrer_share_percent = 80
`
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))

	app := NewApp()
	out := &bytes.Buffer{}
	app.Out = out
	t.Cleanup(func() { _ = app.Close() })

	return &cliFixture{t: t, app: app, configPath: configPath, out: out}
}

func (f *cliFixture) run(args ...string) (string, error) {
	f.out.Reset()
	root := NewRootCommand(f.app)
	root.SetArgs(append([]string{"--config", f.configPath}, args...))
	root.SetOut(f.out)
	root.SetErr(f.out)
	err := root.ExecuteContext(helpers.TestContext(f.t))
	return f.out.String(), err
}

func (f *cliFixture) mustRun(args ...string) string {
	f.t.Helper()
	out, err := f.run(args...)
	require.NoError(f.t, err, out)
	return out
}

func (f *cliFixture) decode(out string) map[string]interface{} {
	f.t.Helper()
	var v map[string]interface{}
	require.NoError(f.t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCLI_HireLifecycle(t *testing.T) {
	f := newCLIFixture(t)
	creator := helpers.RandomAddress().Hex()
	referrer := helpers.RandomAddress().Hex()
	candidate := helpers.RandomAddress().Hex()

	balance := f.decode(f.mustRun("token", "fund", creator, "5000000"))
	assert.Equal(t, "5000000", balance["balance"])
	f.mustRun("token", "approve", "5000000", "--principal", creator)
	f.mustRun("token", "fund", referrer, "500000")
	f.mustRun("token", "approve", "500000", "--principal", referrer)

	job := f.decode(f.mustRun("job", "create", "Backend engineer", "5000000", "-d", "Go and Postgres", "--principal", creator))
	assert.Equal(t, float64(1), job["id"])
	assert.Equal(t, "open", job["state"])
	assert.Equal(t, "5000000", job["initial_bounty"])

	staked := f.decode(f.mustRun("referral", "stake", "1", "Shipped our billing service", "--principal", referrer))
	claimHash, ok := staked["claim_hash"].(string)
	require.True(t, ok)

	status := f.decode(f.mustRun("referral", "claim", claimHash, "--check"))
	assert.Equal(t, true, status["claimable"])

	claimed := f.decode(f.mustRun("referral", "claim", claimHash, "--principal", candidate))
	assert.Equal(t, "submitted", claimed["state"])

	result := f.decode(f.mustRun("referral", "adjudicate", "1", "hire", "--principal", creator))
	payout, ok := result["payout"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "4000000", payout["referrer_amount"])
	assert.Equal(t, "1000000", payout["candidate_amount"])

	out := f.mustRun("token", "balance", referrer, "-o", "yaml")
	assert.Contains(t, out, `balance: "4500000"`)

	escrow := f.decode(f.mustRun("token", "escrow"))
	assert.Equal(t, "0", escrow["balance"])

	view := f.decode(f.mustRun("job", "show", "1"))
	jobView, ok := view["job"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "closed", jobView["state"])

	sync := f.decode(f.mustRun("mirror", "sync"))
	assert.NotZero(t, sync["processed"])
}

func TestCLI_RejectionsUseReadableMessages(t *testing.T) {
	f := newCLIFixture(t)
	creator := helpers.RandomAddress().Hex()

	_, err := f.run("job", "create", "Backend engineer", "5000000", "--principal", creator)
	require.Error(t, err)
	assert.Equal(t, errors.ClassFunds, errors.Classify(err))
	assert.Contains(t, FormatError(err), "not enough funds")

	_, err = f.run("job", "create", "Backend engineer", "5000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), PrincipalEnv)

	_, err = f.run("referral", "adjudicate", "1", "maybe", "--principal", creator)
	require.Error(t, err)
	assert.Equal(t, errors.ClassInvalid, errors.Classify(err))
}

func TestCLI_Export(t *testing.T) {
	f := newCLIFixture(t)
	creator := helpers.RandomAddress().Hex()
	f.mustRun("token", "fund", creator, "1000000")
	f.mustRun("token", "approve", "1000000", "--principal", creator)
	f.mustRun("job", "create", "Designer", "1000000", "--principal", creator)

	path := filepath.Join(t.TempDir(), "ledger.yaml")
	summary := f.decode(f.mustRun("export", path))
	assert.Equal(t, float64(1), summary["jobs"])

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot struct {
		EscrowBalance string `yaml:"escrow_balance"`
		Jobs          []struct {
			TotalPot string `yaml:"total_pot"`
		} `yaml:"jobs"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &snapshot))
	assert.Equal(t, "1000000", snapshot.EscrowBalance)
	require.Len(t, snapshot.Jobs, 1)
	assert.Equal(t, "1000000", snapshot.Jobs[0].TotalPot)
}

func TestCLI_Version(t *testing.T) {
	f := newCLIFixture(t)

	info := f.decode(f.mustRun("version"))
	assert.Equal(t, "dev", info["version"])

	out := f.mustRun("version", "--short")
	assert.Contains(t, out, "Talent Stake dev")
}

func TestCLI_TableOutput(t *testing.T) {
	f := newCLIFixture(t)
	creator := helpers.RandomAddress().Hex()

	f.mustRun("token", "fund", creator, "2000000")
	f.mustRun("token", "approve", "2000000", "--principal", creator)
	f.mustRun("job", "create", "Data engineer", "2000000", "--principal", creator)

	out := f.mustRun("job", "list", "-o", "table")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2, out)
	assert.Equal(t, "ID", strings.Fields(lines[0])[0])
	assert.Contains(t, lines[1], "Data engineer")
	assert.Contains(t, lines[1], creator)
	assert.Contains(t, lines[1], "2000000")

	_, err := f.run("job", "list", "-o", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported: json, yaml, table")
}
