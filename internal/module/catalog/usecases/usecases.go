package usecases

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"travel-booking-service/internal/module/catalog/models/entity"
	"travel-booking-service/internal/module/catalog/models/response"
	"travel-booking-service/internal/module/catalog/repositories"
)

const (
	defaultListLimit = 50
	defaultPageSize  = 20
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	ListServices(ctx context.Context, serviceType string, featuredOnly bool, limit int) (interface{}, error)
	GetService(ctx context.Context, serviceType string, id string) (interface{}, error)
	SearchServices(ctx context.Context, serviceType string, filter entity.SearchFilter, limit int) (interface{}, error)
	// admin
	ListServicesAdmin(ctx context.Context, serviceType string, search string, page int, pageSize int) (response.ServicePage, error)
	CreateService(ctx context.Context, serviceType string, fields map[string]interface{}) (interface{}, error)
	UpdateService(ctx context.Context, serviceType string, id string, fields map[string]interface{}) (interface{}, error)
	DeleteService(ctx context.Context, serviceType string, id string) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ListServices(ctx context.Context, serviceType string, featuredOnly bool, limit int) (interface{}, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	return u.repo.ListByType(ctx, serviceType, featuredOnly, limit)
}

func (u *usecase) GetService(ctx context.Context, serviceType string, id string) (interface{}, error) {
	return u.repo.GetByType(ctx, serviceType, id)
}

func (u *usecase) SearchServices(ctx context.Context, serviceType string, filter entity.SearchFilter, limit int) (interface{}, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	return u.repo.SearchByType(ctx, serviceType, filter, limit)
}

// ListServicesAdmin implements Usecase.
func (u *usecase) ListServicesAdmin(ctx context.Context, serviceType string, search string, page int, pageSize int) (response.ServicePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > defaultListLimit {
		pageSize = defaultPageSize
	}

	items, total, err := u.repo.ListAdmin(ctx, serviceType, search, pageSize, (page-1)*pageSize)
	if err != nil {
		return response.ServicePage{}, err
	}

	return response.ServicePage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}

func (u *usecase) CreateService(ctx context.Context, serviceType string, fields map[string]interface{}) (interface{}, error) {
	return u.repo.InsertService(ctx, serviceType, fields)
}

func (u *usecase) UpdateService(ctx context.Context, serviceType string, id string, fields map[string]interface{}) (interface{}, error) {
	return u.repo.UpdateService(ctx, serviceType, id, fields)
}

func (u *usecase) DeleteService(ctx context.Context, serviceType string, id string) error {
	return u.repo.DeleteService(ctx, serviceType, id)
}
