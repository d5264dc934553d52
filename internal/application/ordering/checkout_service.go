package ordering

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/telemetry"
)

// ErrNoSavedCard is returned when a credit card checkout has no card
// on file and none was submitted
var ErrNoSavedCard = shared.NewDomainError("NO_SAVED_CARD", "No saved card on file; card details are required")

// CheckoutService converts a customer's cart into an order
type CheckoutService struct {
	checkoutRepo   ordering.CheckoutRepository
	cartRepo       shopping.Repository
	customerRepo   partner.CustomerRepository
	cardRepo       partner.CreditCardRepository
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	checkoutRepo ordering.CheckoutRepository,
	cartRepo shopping.Repository,
	customerRepo partner.CustomerRepository,
	cardRepo partner.CreditCardRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		cardRepo:     cardRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout converts the actor's cart into an order. Preconditions are
// checked in a fixed sequence: the caller must be a customer, the cart
// must not be empty, the profile must be complete, and credit card
// payments need a valid card. The order is created and the cart emptied
// in one transaction.
func (s *CheckoutService) Checkout(ctx context.Context, actor Actor, req CheckoutRequest) (*OrderResponse, error) {
	customerID, err := actor.RequireCustomer()
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "checkout.place_order",
		"customer_id", customerID.String())
	defer span.End()

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Profile details submitted with checkout are saved before the
	// completeness check, so a first-time buyer can finish in one call.
	if req.Profile != nil {
		customer.UpdateProfile(req.Profile.FullName, req.Profile.Email, req.Profile.Phone, req.Profile.Address)
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			return nil, err
		}
	}

	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	if !customer.IsProfileComplete() {
		return nil, shared.ErrIncompleteProfile
	}

	paymentMethod := ordering.PaymentMethod(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = ordering.PaymentCashOnDelivery
	}
	if paymentMethod == ordering.PaymentCreditCard {
		if err := s.resolveCard(ctx, customerID, req.Card); err != nil {
			return nil, err
		}
	}

	lines, err := s.buildLines(ctx, cart)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(customerID, paymentMethod, lines)
	if err != nil {
		return nil, err
	}

	if err := s.checkoutRepo.CreateFromCart(ctx, order, cart.ID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, "order_id", order.ID.String())

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.Int("items", len(order.Items)),
		zap.Int("sellers", len(order.Fulfillments)))

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err != nil {
			s.logger.Warn("failed to publish order events", zap.Error(err))
		}
		order.ClearDomainEvents()
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// BuyNow places a single-product order directly, bypassing the cart.
// The cart is left untouched. Preconditions mirror Checkout except the
// line is priced at the current catalog value, since there is no cart
// snapshot to honor.
func (s *CheckoutService) BuyNow(ctx context.Context, actor Actor, req BuyNowRequest) (*OrderResponse, error) {
	customerID, err := actor.RequireCustomer()
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "checkout.buy_now",
		"customer_id", customerID.String(),
		"product_id", req.ProductID.String())
	defer span.End()

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if req.Profile != nil {
		customer.UpdateProfile(req.Profile.FullName, req.Profile.Email, req.Profile.Phone, req.Profile.Address)
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			return nil, err
		}
	}
	if !customer.IsProfileComplete() {
		return nil, shared.ErrIncompleteProfile
	}

	paymentMethod := ordering.PaymentMethod(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = ordering.PaymentCashOnDelivery
	}
	if paymentMethod == ordering.PaymentCreditCard {
		if err := s.resolveCard(ctx, customerID, req.Card); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsInStock() {
		return nil, shared.ErrInsufficientStock
	}
	quantity := req.Quantity
	if quantity > product.Stock {
		quantity = product.Stock
	}

	order, err := ordering.NewOrder(customerID, paymentMethod, []ordering.OrderLine{{
		ProductID: product.ID,
		SellerID:  product.SellerID,
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}})
	if err != nil {
		return nil, err
	}

	if err := s.checkoutRepo.Create(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, "order_id", order.ID.String())

	s.logger.Info("direct order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("product_id", product.ID.String()))

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err != nil {
			s.logger.Warn("failed to publish order events", zap.Error(err))
		}
		order.ClearDomainEvents()
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// resolveCard reuses the saved card or validates and stores the
// submitted one. A submitted card overwrites the saved card in place.
func (s *CheckoutService) resolveCard(ctx context.Context, customerID uuid.UUID, input *CreditCardInput) error {
	saved, err := s.cardRepo.FindByCustomer(ctx, customerID)
	if err != nil && err != shared.ErrNotFound {
		return err
	}

	if input == nil {
		if saved == nil {
			return ErrNoSavedCard
		}
		return saved.Validate()
	}

	if saved != nil {
		if err := saved.Update(input.CardNumber, input.HolderName, input.ExpiryMonth, input.ExpiryYear, input.CVV); err != nil {
			return err
		}
		return s.cardRepo.Save(ctx, saved)
	}

	card, err := partner.NewCreditCard(customerID, input.CardNumber, input.HolderName, input.ExpiryMonth, input.ExpiryYear, input.CVV)
	if err != nil {
		return err
	}
	return s.cardRepo.Save(ctx, card)
}

// buildLines snapshots the cart into order lines. Quantity and unit
// price are the cart's stored values; the catalog only supplies the
// product name and seller. A later catalog price change must not leak
// into an order placed from an older cart.
func (s *CheckoutService) buildLines(ctx context.Context, cart *shopping.Cart) ([]ordering.OrderLine, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]ordering.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", "A product in the cart no longer exists")
		}
		lines = append(lines, ordering.OrderLine{
			ProductID: product.ID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines, nil
}
