package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create lists a new product for the given seller
func (s *ProductService) Create(ctx context.Context, sellerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Stock, sellerID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product listed",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", sellerID.String()))
	response := ToProductResponse(product)
	return &response, nil
}

// Update changes a product listing. Sellers may only touch their own
// products; admins may touch any.
func (s *ProductService) Update(ctx context.Context, sellerID *uuid.UUID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if sellerID != nil && product.SellerID != *sellerID {
		return nil, shared.ErrForbidden
	}
	if req.CategoryID != uuid.Nil {
		if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}
	expectedVersion := product.Version

	if err := product.UpdateDetails(req.Name, req.Description, req.Price, req.Stock, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.productRepo.SaveWithLock(ctx, product, expectedVersion); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product listing with the same ownership rule as Update
func (s *ProductService) Delete(ctx context.Context, sellerID *uuid.UUID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if sellerID != nil && product.SellerID != *sellerID {
		return shared.ErrForbidden
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	s.logger.Info("product removed", zap.String("product_id", productID.String()))
	return nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns products, optionally scoped to a category or searched by name
func (s *ProductService) List(ctx context.Context, categoryID *uuid.UUID, filter shared.Filter) (shared.Paginated[ProductResponse], error) {
	var (
		page shared.Paginated[catalog.Product]
		err  error
	)
	if categoryID != nil {
		page, err = s.productRepo.FindByCategory(ctx, *categoryID, filter)
	} else {
		page, err = s.productRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	return mapPage(page), nil
}

// ListBySeller returns a seller's own listings
func (s *ProductService) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (shared.Paginated[ProductResponse], error) {
	page, err := s.productRepo.FindBySeller(ctx, sellerID, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	return mapPage(page), nil
}

func mapPage(page shared.Paginated[catalog.Product]) shared.Paginated[ProductResponse] {
	responses := make([]ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, ToProductResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize)
}
