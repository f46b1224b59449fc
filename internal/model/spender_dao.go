package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = gorm.ErrRecordNotFound

// CustomSpendersDao defines the interface for database operations on the custom_spenders table.
type CustomSpendersDao interface {
	Insert(ctx context.Context, data *CustomSpenders) error
	Update(ctx context.Context, data *CustomSpenders) error
	FindOne(ctx context.Context, owner, address string) (*CustomSpenders, error)
	FindByOwner(ctx context.Context, owner string) ([]*CustomSpenders, error)
	Delete(ctx context.Context, owner, address string) (int64, error)
}

type customSpendersDao struct {
	db *gorm.DB
}

// NewCustomSpendersDao creates a new instance of CustomSpendersDao.
func NewCustomSpendersDao(db *gorm.DB) CustomSpendersDao {
	return &customSpendersDao{
		db: db,
	}
}

// Insert adds a new record to the custom_spenders table.
func (d *customSpendersDao) Insert(ctx context.Context, data *CustomSpenders) error {
	return d.db.WithContext(ctx).Create(data).Error
}

// Update saves changes to an existing record.
func (d *customSpendersDao) Update(ctx context.Context, data *CustomSpenders) error {
	return d.db.WithContext(ctx).Save(data).Error
}

// FindOne retrieves the record for one (owner, spender address) pair.
func (d *customSpendersDao) FindOne(ctx context.Context, owner, address string) (*CustomSpenders, error) {
	var resp CustomSpenders
	err := d.db.WithContext(ctx).Where("owner_address = ? AND address = ?", owner, address).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

// FindByOwner retrieves all custom spenders saved for an owner address.
func (d *customSpendersDao) FindByOwner(ctx context.Context, owner string) ([]*CustomSpenders, error) {
	var spenders []*CustomSpenders
	err := d.db.WithContext(ctx).Where("owner_address = ?", owner).Order("id").Find(&spenders).Error
	if err != nil {
		return nil, err
	}
	return spenders, nil
}

// Delete removes one saved spender and reports how many rows were affected.
func (d *customSpendersDao) Delete(ctx context.Context, owner, address string) (int64, error) {
	res := d.db.WithContext(ctx).Where("owner_address = ? AND address = ?", owner, address).Delete(&CustomSpenders{})
	return res.RowsAffected, res.Error
}
