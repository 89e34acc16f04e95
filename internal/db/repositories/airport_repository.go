package repositories

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/abheesh-03/Flight-Tracker/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByIATA finds an airport by IATA code (case-insensitive). A nil result
// with nil error means the airport is simply not in the local store yet.
func (r *AirportRepository) FindByIATA(ctx context.Context, iata string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Where("UPPER(iata) = UPPER(?)", iata).
		First(&airport).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// Upsert writes back an airport fetched from the upstream provider.
func (r *AirportRepository) Upsert(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "iata"}},
			UpdateAll: true,
		}).
		Create(airport).Error
}

// Count returns total number of locally stored airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gorm.Airport{}).
		Count(&count).Error
	return count, err
}
