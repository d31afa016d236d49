package centerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres SQLSTATE for a broken unique constraint.
const uniqueViolation = "23505"

// GormCenterRepository implements CenterRepository using GORM.
type GormCenterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCenterRepository creates a new GORM center repository.
func NewGormCenterRepository(db *gorm.DB, tracker aggregateTracker) *GormCenterRepository {
	return &GormCenterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new center. A center without identity gets the one generated by
// the sequence; a restored center keeps its own.
func (r *GormCenterRepository) Add(ctx context.Context, aggregate *center.Center) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}

	if aggregate.ID().IsZero() {
		id, err := kernel.NewID(dto.ID)
		if err != nil {
			return err
		}
		if err = aggregate.BindID(id); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column of an existing center, zero values included.
func (r *GormCenterRepository) Update(ctx context.Context, aggregate *center.Center) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("center", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a center by ID.
func (r *GormCenterRepository) Get(ctx context.Context, id kernel.ID) (*center.Center, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CenterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("center", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every center ordered by ID.
func (r *GormCenterRepository) GetAll(ctx context.Context) ([]*center.Center, error) {
	var dtos []CenterDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllAvailable retrieves the AVAILABLE centers ordered by ID.
func (r *GormCenterRepository) GetAllAvailable(ctx context.Context) ([]*center.Center, error) {
	var dtos []CenterDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status = ?", center.Available.String()).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Delete removes a center by ID.
func (r *GormCenterRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CenterDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("center", id)
	}

	return nil
}

// ExistsAtCoordinates reports whether a center sits exactly at the given position.
func (r *GormCenterRepository) ExistsAtCoordinates(ctx context.Context, coordinates kernel.Coordinates) (bool, error) {
	if err := coordinates.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CenterDTO{}).
		Where("latitude = ? AND longitude = ?", coordinates.Latitude(), coordinates.Longitude()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func toDomainList(dtos []CenterDTO) ([]*center.Center, error) {
	centers := make([]*center.Center, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}

	return centers, nil
}

// translate maps a unique violation of the position index to center.ErrCoordinatesTaken.
// A concurrent insert can pass ExistsAtCoordinates and still lose at commit time.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return center.ErrCoordinatesTaken
	}
	return err
}
