package productrepo

import (
	"context"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uuid.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, p)
	return nil
}

// Update writes an existing product under the version guard.
// Returns an error wrapping errs.ErrConcurrencyConflict when the stored
// version moved since the load.
func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	loadedVersion := p.Version().UInt64()
	dto := fromDomain(p)

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(map[string]any{
			"version": loadedVersion + 1,
			"title":   dto.Title,
			"price":   dto.Price,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var probe ProductDTO
		err := r.db.WithContext(ctx).First(&probe, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("product", p.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewConcurrencyConflictError("product", p.ID().String())
	}

	r.tracker.TrackAggregate(dto.ID, p)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id product.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
