package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// referralRepository implements the ReferralRepository interface.
type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository.
func NewReferralRepository(db *gorm.DB) interfaces.ReferralRepository {
	return &referralRepository{db: db}
}

// NextID reserves the next referral ID.
func (r *referralRepository) NextID(ctx context.Context) (uint64, error) {
	id, err := nextCounterValue(ctx, r.db, counterReferral)
	if err != nil {
		return 0, r.wrap("NextID", err)
	}
	return id, nil
}

// Create stores a new referral.
func (r *referralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	if err := r.db.WithContext(ctx).Create(toReferralRow(referral)).Error; err != nil {
		return r.wrap("Create", err)
	}
	return nil
}

// FindByID finds a referral by its ID.
func (r *referralRepository) FindByID(ctx context.Context, id uint64) (*entities.Referral, error) {
	var row referralRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewDomainError(errors.ErrReferralNotFound, fmt.Sprintf("referral %d", id))
		}
		return nil, r.wrap("FindByID", err)
	}
	return row.toEntity(), nil
}

// FindByClaimHash resolves a claim hash to its referral.
func (r *referralRepository) FindByClaimHash(ctx context.Context, hash common.Hash) (*entities.Referral, error) {
	var row referralRow
	err := r.db.WithContext(ctx).Where("claim_hash = ?", hash.Hex()).Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewDomainError(errors.ErrClaimNotFound, "no referral for this claim link")
		}
		return nil, r.wrap("FindByClaimHash", err)
	}
	return row.toEntity(), nil
}

// ExistsByClaimHash reports whether a claim hash is already issued.
func (r *referralRepository) ExistsByClaimHash(ctx context.Context, hash common.Hash) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&referralRow{}).
		Where("claim_hash = ?", hash.Hex()).
		Count(&count).Error
	if err != nil {
		return false, r.wrap("ExistsByClaimHash", err)
	}
	return count > 0, nil
}

// ExistsForReferrer reports whether referrer already staked on the job.
func (r *referralRepository) ExistsForReferrer(ctx context.Context, jobID uint64, referrer common.Address) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&referralRow{}).
		Where("job_id = ? AND referrer = ?", jobID, referrer.Hex()).
		Count(&count).Error
	if err != nil {
		return false, r.wrap("ExistsForReferrer", err)
	}
	return count > 0, nil
}

// FindByJob lists the referrals of a job in ID order.
func (r *referralRepository) FindByJob(ctx context.Context, jobID uint64) ([]entities.Referral, error) {
	var rows []referralRow
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.wrap("FindByJob", err)
	}
	return referralRowsToEntities(rows), nil
}

// FindInFlightByJob lists referrals of a job whose stake is still held.
func (r *referralRepository) FindInFlightByJob(ctx context.Context, jobID uint64) ([]entities.Referral, error) {
	var rows []referralRow
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND state IN ?", jobID, []string{
			string(entities.ReferralStatePendingClaim),
			string(entities.ReferralStateSubmitted),
		}).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.wrap("FindInFlightByJob", err)
	}
	return referralRowsToEntities(rows), nil
}

// FindByReferrer lists a referrer's referrals, newest first.
func (r *referralRepository) FindByReferrer(ctx context.Context, referrer common.Address) ([]entities.Referral, error) {
	var rows []referralRow
	err := r.db.WithContext(ctx).
		Where("referrer = ?", referrer.Hex()).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.wrap("FindByReferrer", err)
	}
	return referralRowsToEntities(rows), nil
}

// FindPage lists referrals with ID greater than afterID in ID order.
func (r *referralRepository) FindPage(ctx context.Context, afterID uint64, limit int) ([]entities.Referral, error) {
	var rows []referralRow
	err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.wrap("FindPage", err)
	}
	return referralRowsToEntities(rows), nil
}

// Update persists the mutable fields of a referral.
func (r *referralRepository) Update(ctx context.Context, referral *entities.Referral) error {
	result := r.db.WithContext(ctx).
		Model(&referralRow{}).
		Where("id = ?", referral.ID).
		Updates(map[string]interface{}{
			"candidate":  addressPtrToString(referral.Candidate),
			"state":      string(referral.State),
			"version":    referral.Version,
			"decided_at": referral.DecidedAt,
		})
	if result.Error != nil {
		return r.wrap("Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewDomainError(errors.ErrReferralNotFound, fmt.Sprintf("referral %d", referral.ID))
	}
	return nil
}

func (r *referralRepository) wrap(operation string, err error) error {
	return &errors.RepositoryError{
		Operation: operation,
		Entity:    "Referral",
		Err:       err,
	}
}
