package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/application/usecases"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
	"talent-stake/test/helpers"
)

func testConfig(t *testing.T) *Config {
	return &Config{
		LogLevel: "panic",
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "ledger.db"),
		},
		Escrow: EscrowConfig{
			HolderAddress:          testHolder,
			StakeAmount:            "500000",
			ReferrerSharePercent:   80,
			OneReferralPerReferrer: true,
		},
		Mirror: MirrorConfig{
			Store:             MirrorStoreDatabase,
			SyncSchedule:      "@every 1h",
			ReconcileSchedule: "@every 1h",
			BatchSize:         100,
		},
	}
}

func TestContainer_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, cfg.Validate())

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Nil(t, c.ProjectionPublisher)
	assert.Nil(t, c.ChainReader)
	assert.False(t, c.Notifier.IsConfigured())

	creator := helpers.RandomAddress()
	require.NoError(t, c.FundingService.Fund(ctx, creator, entities.NewAmount(1_000_000)))
	require.NoError(t, c.FundingService.ApproveEscrow(ctx, creator, entities.NewAmount(1_000_000)))

	job, err := c.EscrowEngine.CreateJob(ctx, interfaces.CreateJobParams{
		Creator: creator,
		Title:   "Backend engineer",
		Bounty:  entities.NewAmount(1_000_000),
	})
	require.NoError(t, err)

	escrowed, err := c.LedgerQueries.EscrowBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.NewAmount(1_000_000), escrowed)

	result, err := c.SyncMirrorUseCase.Execute(ctx, interfaces.SyncMirrorParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, int64(0), result.Pending)

	projection, err := c.ReadStore.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Version, projection.Version)
	assert.Equal(t, entities.JobStateOpen, projection.State)
}

func TestContainer_MemoryStoreSeedsFromLedger(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	creator := helpers.RandomAddress()
	require.NoError(t, first.FundingService.Fund(ctx, creator, entities.NewAmount(2_000)))
	require.NoError(t, first.FundingService.ApproveEscrow(ctx, creator, entities.NewAmount(2_000)))
	job, err := first.EscrowEngine.CreateJob(ctx, interfaces.CreateJobParams{
		Creator: creator,
		Title:   "QA engineer",
		Bounty:  entities.NewAmount(2_000),
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	cfg.Mirror.Store = MirrorStoreMemory
	require.NoError(t, cfg.Validate())
	second, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	projection, err := second.ReadStore.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.NewAmount(2_000), projection.TotalPot)
}

// pageThenCommit returns each page as read, then runs afterRead once before
// handing the now stale page back.
type pageThenCommit struct {
	interfaces.JobRepository
	afterRead func()
}

func (r *pageThenCommit) FindPage(ctx context.Context, afterID uint64, limit int) ([]entities.Job, error) {
	jobs, err := r.JobRepository.FindPage(ctx, afterID, limit)
	if r.afterRead != nil {
		hook := r.afterRead
		r.afterRead = nil
		hook()
	}
	return jobs, err
}

func TestContainer_ReconcileKeepsProjectionSyncedAfterPageRead(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	creator := helpers.RandomAddress()
	require.NoError(t, c.FundingService.Fund(ctx, creator, entities.NewAmount(3_000)))
	require.NoError(t, c.FundingService.ApproveEscrow(ctx, creator, entities.NewAmount(3_000)))
	job, err := c.EscrowEngine.CreateJob(ctx, interfaces.CreateJobParams{
		Creator: creator,
		Title:   "Data engineer",
		Bounty:  entities.NewAmount(3_000),
	})
	require.NoError(t, err)
	_, err = c.SyncMirrorUseCase.Execute(ctx, interfaces.SyncMirrorParams{})
	require.NoError(t, err)

	jobs := &pageThenCommit{
		JobRepository: c.JobRepository,
		afterRead: func() {
			_, err := c.EscrowEngine.WithdrawJob(ctx, interfaces.WithdrawJobParams{JobID: job.ID, Caller: creator})
			require.NoError(t, err)
			_, err = c.SyncMirrorUseCase.Execute(ctx, interfaces.SyncMirrorParams{})
			require.NoError(t, err)
		},
	}
	reconcile := usecases.NewReconcileMirrorUseCase(jobs, c.ReferralRepository, c.ReadStore, c.Logger)

	result, err := reconcile.Execute(ctx, interfaces.ReconcileMirrorParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.JobsChecked)

	ledger, err := c.LedgerQueries.GetJob(ctx, job.ID)
	require.NoError(t, err)
	projection, err := c.ReadStore.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.JobStateClosed, ledger.State)
	assert.Equal(t, ledger.State, projection.State)
	assert.Equal(t, ledger.Version, projection.Version)

	pending, err := c.EventRepository.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending)
}

func TestContainer_InvalidDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "mysql"

	_, err := NewContainer(context.Background(), cfg)
	assert.Error(t, err)
}

func TestEscrowConfig_Holder(t *testing.T) {
	holder, err := EscrowConfig{}.Holder()
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, holder)

	_, err = EscrowConfig{HolderAddress: "0x12"}.Holder()
	assert.Error(t, err)
}
