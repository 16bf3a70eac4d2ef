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

// jobRepository implements the JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) interfaces.JobRepository {
	return &jobRepository{db: db}
}

// NextID reserves the next job ID.
func (r *jobRepository) NextID(ctx context.Context) (uint64, error) {
	id, err := nextCounterValue(ctx, r.db, counterJob)
	if err != nil {
		return 0, &errors.RepositoryError{
			Operation: "NextID",
			Entity:    "Job",
			Err:       err,
		}
	}
	return id, nil
}

// Create stores a new job.
func (r *jobRepository) Create(ctx context.Context, job *entities.Job) error {
	if err := r.db.WithContext(ctx).Create(toJobRow(job)).Error; err != nil {
		return &errors.RepositoryError{
			Operation: "Create",
			Entity:    "Job",
			Err:       err,
		}
	}
	return nil
}

// FindByID finds a job by its ID.
func (r *jobRepository) FindByID(ctx context.Context, id uint64) (*entities.Job, error) {
	return r.find(ctx, r.db.WithContext(ctx), "FindByID", id)
}

// FindByIDForUpdate finds a job and holds its row lock for the rest of the transaction.
func (r *jobRepository) FindByIDForUpdate(ctx context.Context, id uint64) (*entities.Job, error) {
	query := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.find(ctx, query, "FindByIDForUpdate", id)
}

func (r *jobRepository) find(_ context.Context, query *gorm.DB, operation string, id uint64) (*entities.Job, error) {
	var row jobRow
	err := query.Where("id = ?", id).Take(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewDomainError(errors.ErrJobNotFound, fmt.Sprintf("job %d", id))
		}
		return nil, &errors.RepositoryError{
			Operation: operation,
			Entity:    "Job",
			Err:       err,
		}
	}
	return row.toEntity(), nil
}

// Update persists the mutable fields of a job.
func (r *jobRepository) Update(ctx context.Context, job *entities.Job) error {
	result := r.db.WithContext(ctx).
		Model(&jobRow{}).
		Where("id = ?", job.ID).
		Updates(map[string]interface{}{
			"accumulated_spam": job.AccumulatedSpam,
			"state":            string(job.State),
			"version":          job.Version,
			"closed_at":        job.ClosedAt,
		})
	if result.Error != nil {
		return &errors.RepositoryError{
			Operation: "Update",
			Entity:    "Job",
			Err:       result.Error,
		}
	}
	if result.RowsAffected == 0 {
		return errors.NewDomainError(errors.ErrJobNotFound, fmt.Sprintf("job %d", job.ID))
	}
	return nil
}

// FindByFilter lists jobs matching the filter, newest first.
func (r *jobRepository) FindByFilter(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error) {
	query := r.db.WithContext(ctx).Model(&jobRow{})
	if filter.Creator != nil {
		query = query.Where("creator = ?", filter.Creator.Hex())
	}
	if filter.State != nil {
		query = query.Where("state = ?", string(*filter.State))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []jobRow
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByFilter",
			Entity:    "Job",
			Err:       err,
		}
	}
	return jobRowsToEntities(rows), nil
}

// FindPage lists jobs with ID greater than afterID in ID order.
func (r *jobRepository) FindPage(ctx context.Context, afterID uint64, limit int) ([]entities.Job, error) {
	var rows []jobRow
	err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindPage",
			Entity:    "Job",
			Err:       err,
		}
	}
	return jobRowsToEntities(rows), nil
}

func jobRowsToEntities(rows []jobRow) []entities.Job {
	jobs := make([]entities.Job, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, *rows[i].toEntity())
	}
	return jobs
}
