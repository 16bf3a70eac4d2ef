package repository

import (
	"github.com/ethereum/go-ethereum/common"
	"talent-stake/domain/entities"
)

func toJobRow(job *entities.Job) *jobRow {
	return &jobRow{
		ID:              job.ID,
		Creator:         job.Creator.Hex(),
		Title:           job.Title,
		Description:     job.Description,
		InitialBounty:   job.InitialBounty,
		AccumulatedSpam: job.AccumulatedSpam,
		State:           string(job.State),
		Version:         job.Version,
		CreatedAt:       job.CreatedAt,
		ClosedAt:        job.ClosedAt,
	}
}

func (r *jobRow) toEntity() *entities.Job {
	return &entities.Job{
		ID:              r.ID,
		Creator:         common.HexToAddress(r.Creator),
		Title:           r.Title,
		Description:     r.Description,
		InitialBounty:   r.InitialBounty,
		AccumulatedSpam: r.AccumulatedSpam,
		State:           entities.JobState(r.State),
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
		ClosedAt:        r.ClosedAt,
	}
}

func toReferralRow(referral *entities.Referral) *referralRow {
	row := &referralRow{
		ID:          referral.ID,
		JobID:       referral.JobID,
		Referrer:    referral.Referrer.Hex(),
		Pitch:       referral.Pitch,
		StakeAmount: referral.StakeAmount,
		State:       string(referral.State),
		ClaimHash:   referral.ClaimHash.Hex(),
		Version:     referral.Version,
		CreatedAt:   referral.CreatedAt,
		DecidedAt:   referral.DecidedAt,
	}
	row.Candidate = addressPtrToString(referral.Candidate)
	return row
}

func (r *referralRow) toEntity() *entities.Referral {
	return &entities.Referral{
		ID:          r.ID,
		JobID:       r.JobID,
		Referrer:    common.HexToAddress(r.Referrer),
		Candidate:   stringPtrToAddress(r.Candidate),
		Pitch:       r.Pitch,
		StakeAmount: r.StakeAmount,
		State:       entities.ReferralState(r.State),
		ClaimHash:   common.HexToHash(r.ClaimHash),
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		DecidedAt:   r.DecidedAt,
	}
}

func referralRowsToEntities(rows []referralRow) []entities.Referral {
	referrals := make([]entities.Referral, 0, len(rows))
	for i := range rows {
		referrals = append(referrals, *rows[i].toEntity())
	}
	return referrals
}

func toDisputeRow(d *entities.Dispute) *disputeRow {
	return &disputeRow{
		ID:         d.ID,
		JobID:      d.JobID,
		Reporter:   d.Reporter.Hex(),
		Target:     d.Target.Hex(),
		Reason:     d.Reason,
		Evidence:   d.Evidence,
		Status:     string(d.Status),
		Resolution: d.Resolution,
		CreatedAt:  d.CreatedAt,
		ResolvedAt: d.ResolvedAt,
	}
}

func (r *disputeRow) toEntity() entities.Dispute {
	return entities.Dispute{
		ID:         r.ID,
		JobID:      r.JobID,
		Reporter:   common.HexToAddress(r.Reporter),
		Target:     common.HexToAddress(r.Target),
		Reason:     r.Reason,
		Evidence:   r.Evidence,
		Status:     entities.DisputeStatus(r.Status),
		Resolution: r.Resolution,
		CreatedAt:  r.CreatedAt,
		ResolvedAt: r.ResolvedAt,
	}
}

func toJobProjectionRow(p entities.JobProjection) *jobProjectionRow {
	return &jobProjectionRow{
		JobID:           p.JobID,
		Creator:         p.Creator.Hex(),
		Title:           p.Title,
		Description:     p.Description,
		InitialBounty:   p.InitialBounty,
		AccumulatedSpam: p.AccumulatedSpam,
		TotalPot:        p.TotalPot,
		State:           string(p.State),
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		ClosedAt:        p.ClosedAt,
		SyncedAt:        p.SyncedAt,
	}
}

func (r *jobProjectionRow) toEntity() *entities.JobProjection {
	return &entities.JobProjection{
		JobID:           r.JobID,
		Creator:         common.HexToAddress(r.Creator),
		Title:           r.Title,
		Description:     r.Description,
		InitialBounty:   r.InitialBounty,
		AccumulatedSpam: r.AccumulatedSpam,
		TotalPot:        r.TotalPot,
		State:           entities.JobState(r.State),
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
		ClosedAt:        r.ClosedAt,
		SyncedAt:        r.SyncedAt,
	}
}

func toReferralProjectionRow(p entities.ReferralProjection) *referralProjectionRow {
	return &referralProjectionRow{
		ReferralID:  p.ReferralID,
		JobID:       p.JobID,
		Referrer:    p.Referrer.Hex(),
		Candidate:   addressPtrToString(p.Candidate),
		Pitch:       p.Pitch,
		StakeAmount: p.StakeAmount,
		State:       string(p.State),
		ClaimHash:   p.ClaimHash.Hex(),
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		DecidedAt:   p.DecidedAt,
		SyncedAt:    p.SyncedAt,
	}
}

func (r *referralProjectionRow) toEntity() *entities.ReferralProjection {
	return &entities.ReferralProjection{
		ReferralID:  r.ReferralID,
		JobID:       r.JobID,
		Referrer:    common.HexToAddress(r.Referrer),
		Candidate:   stringPtrToAddress(r.Candidate),
		Pitch:       r.Pitch,
		StakeAmount: r.StakeAmount,
		State:       entities.ReferralState(r.State),
		ClaimHash:   common.HexToHash(r.ClaimHash),
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		DecidedAt:   r.DecidedAt,
		SyncedAt:    r.SyncedAt,
	}
}

func addressPtrToString(addr *common.Address) *string {
	if addr == nil {
		return nil
	}
	s := addr.Hex()
	return &s
}

func stringPtrToAddress(s *string) *common.Address {
	if s == nil {
		return nil
	}
	addr := common.HexToAddress(*s)
	return &addr
}
