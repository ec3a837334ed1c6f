package repository

import (
	"context"

	"charty-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns every customer ordered by name, for form pickers.
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error; err != nil {
		return nil, wrapErr(err, "list customers")
	}
	return customers, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, wrapErr(err, "count customers")
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return wrapErr(r.db.WithContext(ctx).Create(customer).Error, "create customer")
}
