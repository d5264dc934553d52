package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// SellerService manages seller store profiles
type SellerService struct {
	sellerRepo partner.SellerRepository
	logger     *zap.Logger
}

// NewSellerService creates a new SellerService
func NewSellerService(sellerRepo partner.SellerRepository, logger *zap.Logger) *SellerService {
	return &SellerService{
		sellerRepo: sellerRepo,
		logger:     logger,
	}
}

// GetProfile returns the seller's store profile
func (s *SellerService) GetProfile(ctx context.Context, sellerID uuid.UUID) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	response := ToSellerResponse(seller)
	return &response, nil
}

// UpdateProfile sets the seller's store details
func (s *SellerService) UpdateProfile(ctx context.Context, sellerID uuid.UUID, req UpdateSellerRequest) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if err := seller.UpdateProfile(req.StoreName, req.Email, req.Phone); err != nil {
		return nil, err
	}
	if err := s.sellerRepo.Save(ctx, seller); err != nil {
		return nil, err
	}
	response := ToSellerResponse(seller)
	return &response, nil
}

// ListSellers returns all sellers
func (s *SellerService) ListSellers(ctx context.Context, filter shared.Filter) (shared.Paginated[SellerResponse], error) {
	page, err := s.sellerRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[SellerResponse]{}, err
	}
	responses := make([]SellerResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, ToSellerResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}
