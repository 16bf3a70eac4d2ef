package repository

import (
	"context"

	"gorm.io/gorm"
	"talent-stake/domain/entities"
	"talent-stake/domain/errors"
	"talent-stake/domain/interfaces"
)

// disputeRepository implements the DisputeRepository interface.
type disputeRepository struct {
	db *gorm.DB
}

// NewDisputeRepository creates a new dispute repository.
func NewDisputeRepository(db *gorm.DB) interfaces.DisputeRepository {
	return &disputeRepository{db: db}
}

// Create stores a dispute.
func (r *disputeRepository) Create(ctx context.Context, dispute *entities.Dispute) error {
	if err := r.db.WithContext(ctx).Create(toDisputeRow(dispute)).Error; err != nil {
		return &errors.RepositoryError{
			Operation: "Create",
			Entity:    "Dispute",
			Err:       err,
		}
	}
	return nil
}

// FindByJob lists the disputes raised on a job, oldest first.
func (r *disputeRepository) FindByJob(ctx context.Context, jobID uint64) ([]entities.Dispute, error) {
	var rows []disputeRow
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByJob",
			Entity:    "Dispute",
			Err:       err,
		}
	}

	disputes := make([]entities.Dispute, 0, len(rows))
	for i := range rows {
		disputes = append(disputes, rows[i].toEntity())
	}
	return disputes, nil
}
