package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// CustomerService manages customer profiles and their saved payment card
type CustomerService struct {
	customerRepo partner.CustomerRepository
	cardRepo     partner.CreditCardRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, cardRepo partner.CreditCardRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		cardRepo:     cardRepo,
		logger:       logger,
	}
}

// GetProfile returns the customer's profile
func (s *CustomerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// UpdateProfile sets the customer's contact details
func (s *CustomerService) UpdateProfile(ctx context.Context, customerID uuid.UUID, req UpdateProfileRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer.UpdateProfile(req.FullName, req.Email, req.Phone, req.Address)
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetCard returns the customer's saved card, masked
func (s *CustomerService) GetCard(ctx context.Context, customerID uuid.UUID) (*CardResponse, error) {
	card, err := s.cardRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	response := ToCardResponse(card)
	return &response, nil
}

// SaveCard stores the card, replacing any existing one in place
func (s *CustomerService) SaveCard(ctx context.Context, customerID uuid.UUID, req SaveCardRequest) (*CardResponse, error) {
	existing, err := s.cardRepo.FindByCustomer(ctx, customerID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	var card *partner.CreditCard
	if existing != nil {
		if err := existing.Update(req.CardNumber, req.HolderName, req.ExpiryMonth, req.ExpiryYear, req.CVV); err != nil {
			return nil, err
		}
		card = existing
	} else {
		card, err = partner.NewCreditCard(customerID, req.CardNumber, req.HolderName, req.ExpiryMonth, req.ExpiryYear, req.CVV)
		if err != nil {
			return nil, err
		}
	}
	if err := s.cardRepo.Save(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info("payment card saved", zap.String("customer_id", customerID.String()))
	response := ToCardResponse(card)
	return &response, nil
}

// DeleteCard removes the customer's saved card
func (s *CustomerService) DeleteCard(ctx context.Context, customerID uuid.UUID) error {
	card, err := s.cardRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	return s.cardRepo.Delete(ctx, card.ID)
}

// ListCustomers returns all customers. Admin only, enforced at the router.
func (s *CustomerService) ListCustomers(ctx context.Context, filter shared.Filter) (shared.Paginated[CustomerResponse], error) {
	page, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}
	responses := make([]CustomerResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, ToCustomerResponse(&page.Items[i]))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}
