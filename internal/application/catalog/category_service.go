package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// CategoryService handles category management. Mutations are admin only
// and enforced at the router.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create adds a new category
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info("category created", zap.String("category_id", category.ID.String()))
	response := ToCategoryResponse(category)
	return &response, nil
}

// Rename changes a category's name
func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, req CategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes an empty category. Categories that still hold
// products cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("INVALID_STATE", "Category still contains products")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[CategoryResponse], error) {
	page, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CategoryResponse]{}, err
	}
	responses := make([]CategoryResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, ToCategoryResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}
