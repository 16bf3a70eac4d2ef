package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// projectionStore implements the ReadStore interface on gorm tables.
type projectionStore struct {
	db *gorm.DB
}

// NewProjectionStore creates a read store over db.
func NewProjectionStore(db *gorm.DB) interfaces.ReadStore {
	return &projectionStore{db: db}
}

// GetJob returns the projection of a job.
func (s *projectionStore) GetJob(ctx context.Context, jobID uint64) (*entities.JobProjection, error) {
	var row jobProjectionRow
	err := s.db.WithContext(ctx).Where("job_id = ?", jobID).Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewDomainError(errors.ErrNotFound, fmt.Sprintf("job projection %d", jobID))
		}
		return nil, s.wrap("GetJob", "JobProjection", err)
	}
	return row.toEntity(), nil
}

// GetReferral returns the projection of a referral.
func (s *projectionStore) GetReferral(ctx context.Context, referralID uint64) (*entities.ReferralProjection, error) {
	var row referralProjectionRow
	err := s.db.WithContext(ctx).Where("referral_id = ?", referralID).Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewDomainError(errors.ErrNotFound, fmt.Sprintf("referral projection %d", referralID))
		}
		return nil, s.wrap("GetReferral", "ReferralProjection", err)
	}
	return row.toEntity(), nil
}

// ListReferralsByJob returns the projected referrals of a job.
func (s *projectionStore) ListReferralsByJob(ctx context.Context, jobID uint64) ([]entities.ReferralProjection, error) {
	var rows []referralProjectionRow
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("referral_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, s.wrap("ListReferralsByJob", "ReferralProjection", err)
	}
	projections := make([]entities.ReferralProjection, 0, len(rows))
	for i := range rows {
		projections = append(projections, *rows[i].toEntity())
	}
	return projections, nil
}

// UpsertJob writes p unless a newer or identical projection is stored.
func (s *projectionStore) UpsertJob(ctx context.Context, p entities.JobProjection) (bool, error) {
	changed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing jobProjectionRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("job_id = ?", p.JobID).Take(&existing).Error
		switch {
		case stderrors.Is(err, gorm.ErrRecordNotFound):
			changed = true
			return tx.Create(toJobProjectionRow(p)).Error
		case err != nil:
			return err
		}

		current := existing.toEntity()
		if current.Version > p.Version || current.Matches(p) {
			return nil
		}
		changed = true
		return tx.Model(&jobProjectionRow{}).Where("job_id = ?", p.JobID).Select("*").Updates(toJobProjectionRow(p)).Error
	})
	if err != nil {
		return false, s.wrap("UpsertJob", "JobProjection", err)
	}
	return changed, nil
}

// UpsertReferral writes p unless a newer or identical projection is stored.
func (s *projectionStore) UpsertReferral(ctx context.Context, p entities.ReferralProjection) (bool, error) {
	changed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing referralProjectionRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("referral_id = ?", p.ReferralID).Take(&existing).Error
		switch {
		case stderrors.Is(err, gorm.ErrRecordNotFound):
			changed = true
			return tx.Create(toReferralProjectionRow(p)).Error
		case err != nil:
			return err
		}

		current := existing.toEntity()
		if current.Version > p.Version || current.Matches(p) {
			return nil
		}
		changed = true
		return tx.Model(&referralProjectionRow{}).Where("referral_id = ?", p.ReferralID).Select("*").Updates(toReferralProjectionRow(p)).Error
	})
	if err != nil {
		return false, s.wrap("UpsertReferral", "ReferralProjection", err)
	}
	return changed, nil
}

// OverwriteJob writes p regardless of what is stored.
func (s *projectionStore) OverwriteJob(ctx context.Context, p entities.JobProjection) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		UpdateAll: true,
	}).Create(toJobProjectionRow(p)).Error
	if err != nil {
		return s.wrap("OverwriteJob", "JobProjection", err)
	}
	return nil
}

// OverwriteReferral writes p regardless of what is stored.
func (s *projectionStore) OverwriteReferral(ctx context.Context, p entities.ReferralProjection) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "referral_id"}},
		UpdateAll: true,
	}).Create(toReferralProjectionRow(p)).Error
	if err != nil {
		return s.wrap("OverwriteReferral", "ReferralProjection", err)
	}
	return nil
}

func (s *projectionStore) wrap(operation, entity string, err error) error {
	return &errors.RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}
