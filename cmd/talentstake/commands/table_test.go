package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
)

func tableLines(t *testing.T, data interface{}) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewOutputFormatter(OutputFormatTable, &buf).Print(data))
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTableOutput_Jobs(t *testing.T) {
	creator := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	jobs := []entities.Job{{
		ID:              7,
		Creator:         creator,
		Title:           "Staff engineer, payments platform and ledger team",
		InitialBounty:   entities.NewAmount(5_000_000),
		AccumulatedSpam: entities.NewAmount(500_000),
		State:           entities.JobStateOpen,
		Version:         2,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}

	lines := tableLines(t, jobs)
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "State", "Title", "Creator", "Bounty", "Spam", "Pot", "Created"},
		strings.Fields(lines[0]))

	row := lines[1]
	assert.True(t, strings.HasPrefix(row, "7 "))
	assert.Contains(t, row, "Staff engineer, payments plat...")
	assert.Contains(t, row, creator.Hex())
	assert.Contains(t, row, "5000000")
	assert.Contains(t, row, "5500000")
	assert.Contains(t, row, "2026-01-02 03:04:05")

	// Columns line up under the header.
	assert.Equal(t, strings.Index(lines[0], "Creator"), strings.Index(row, creator.Hex()))
}

func TestTableOutput_JobView(t *testing.T) {
	candidate := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	decided := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	view := &dto.JobView{
		Job: &entities.Job{
			ID:            1,
			Title:         "SRE",
			InitialBounty: entities.NewAmount(1_000),
			State:         entities.JobStateClosed,
		},
		TotalPot: entities.NewAmount(1_000),
		Referrals: []entities.Referral{
			{ID: 1, JobID: 1, State: entities.ReferralStateHired, Candidate: &candidate,
				StakeAmount: entities.NewAmount(100), DecidedAt: &decided},
			{ID: 2, JobID: 1, State: entities.ReferralStatePendingClaim, StakeAmount: entities.NewAmount(100)},
		},
		Summary: dto.ReferralSummary{
			Total: 2,
			ByState: map[entities.ReferralState]int{
				entities.ReferralStateHired:        1,
				entities.ReferralStatePendingClaim: 1,
			},
		},
	}

	out := strings.Join(tableLines(t, view), "\n")
	assert.Contains(t, out, "ID  Job  State")
	assert.Contains(t, out, candidate.Hex())
	assert.Contains(t, out, "2026-02-01 00:00:00")
	assert.Contains(t, out, "Referrals: 2 [")
	assert.Contains(t, out, string(entities.ReferralStateHired)+"=1")
}

func TestTableOutput_Events(t *testing.T) {
	events := []entities.LedgerEvent{
		{Sequence: 1, Type: entities.EventJobCreated, JobID: 3, OccurredAt: time.Now()},
	}

	lines := tableLines(t, events)
	require.Len(t, lines, 2)
	assert.Equal(t, "Seq", strings.Fields(lines[0])[0])
	fields := strings.Fields(lines[1])
	assert.Equal(t, "1", fields[0])
	assert.Equal(t, string(entities.EventJobCreated), fields[1])
	assert.Equal(t, "-", fields[3])
	assert.Equal(t, "-", fields[len(fields)-1])
}

func TestTableOutput_FallsBackToFields(t *testing.T) {
	lines := tableLines(t, map[string]interface{}{
		"balance":  entities.NewAmount(4_500_000),
		"count":    1500000,
		"migrated": true,
		"nested":   map[string]int{"a": 1},
	})

	require.Len(t, lines, 5)
	assert.Equal(t, []string{"Field", "Value"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"balance", "4500000"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"count", "1500000"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"migrated", "true"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"nested", `{"a":1}`}, strings.Fields(lines[4]))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
