package clientrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new client and assigns the sequence-allocated id back onto
// the aggregate.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a client by id.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a client by login name.
func (r *GormClientRepository) GetByUsername(ctx context.Context, username string) (*client.Client, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithUsername reports whether a client already uses the given username.
func (r *GormClientRepository) ExistsWithUsername(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, errs.NewValueIsRequiredError("username")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ClientDTO{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
