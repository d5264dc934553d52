package ordering

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// OrderService handles order queries and fulfillment transitions
type OrderService struct {
	orderRepo      ordering.Repository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.Repository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID returns an order scoped to what the actor may see. Customers
// see their own orders, sellers see only their slice, admins see all.
func (s *OrderService) GetByID(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsAdmin():
		response := ToOrderResponse(order)
		return &response, nil
	case actor.CustomerID != nil && *actor.CustomerID == order.CustomerID:
		response := ToOrderResponse(order)
		return &response, nil
	case actor.SellerID != nil && order.FulfillmentFor(*actor.SellerID) != nil:
		response := ToSellerOrderResponse(order, *actor.SellerID)
		return &response, nil
	}
	return nil, shared.ErrForbidden
}

// List returns the orders visible to the actor
func (s *OrderService) List(ctx context.Context, actor Actor, filter shared.Filter) (shared.Paginated[OrderResponse], error) {
	var (
		page shared.Paginated[ordering.Order]
		err  error
	)
	switch {
	case actor.IsAdmin():
		page, err = s.orderRepo.FindAll(ctx, filter)
	case actor.SellerID != nil:
		page, err = s.orderRepo.FindBySeller(ctx, *actor.SellerID, filter)
	case actor.CustomerID != nil:
		page, err = s.orderRepo.FindByCustomer(ctx, *actor.CustomerID, filter)
	default:
		err = shared.ErrUnauthorized
	}
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}

	responses := make([]OrderResponse, 0, len(page.Items))
	for i := range page.Items {
		if actor.SellerID != nil && !actor.IsAdmin() {
			responses = append(responses, ToSellerOrderResponse(&page.Items[i], *actor.SellerID))
		} else {
			responses = append(responses, ToOrderResponse(&page.Items[i]))
		}
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

// UpdateStatus advances fulfillment status. Admins advance every slot
// that accepts the target; sellers advance only their own slot.
// Customers cannot use this operation; they cancel instead.
func (s *OrderService) UpdateStatus(ctx context.Context, actor Actor, orderID uuid.UUID, req UpdateStatusRequest) (*BulkUpdateResponse, error) {
	target := ordering.FulfillmentStatus(req.Status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown fulfillment status")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	expectedVersion := order.Version

	var changed int
	switch {
	case actor.IsAdmin():
		changed, err = order.AdvanceAll(target)
	case actor.SellerID != nil:
		err = order.AdvanceFulfillment(*actor.SellerID, target)
		changed = 1
	default:
		err = shared.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order, expectedVersion); err != nil {
		return nil, err
	}

	s.logger.Info("fulfillment status updated",
		zap.String("order_id", orderID.String()),
		zap.String("target", target.String()),
		zap.Int("changed", changed))

	s.publishEvents(ctx, order)
	return &BulkUpdateResponse{Order: ToOrderResponse(order), Changed: changed}, nil
}

// Cancel cancels the order on behalf of its customer, or any order for
// an admin. It fails once any slot has shipped.
func (s *OrderService) Cancel(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		customerID, err := actor.RequireCustomer()
		if err != nil {
			return nil, shared.ErrForbidden
		}
		if customerID != order.CustomerID {
			return nil, shared.ErrForbidden
		}
	}
	expectedVersion := order.Version

	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order, expectedVersion); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled", zap.String("order_id", orderID.String()))
	s.publishEvents(ctx, order)
	response := ToOrderResponse(order)
	return &response, nil
}

// Delete removes an order entirely. Admin only.
func (s *OrderService) Delete(ctx context.Context, actor Actor, orderID uuid.UUID) error {
	if !actor.IsAdmin() {
		return shared.ErrForbidden
	}
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("order_id", orderID.String()))
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, ordering.NewOrderDeletedEvent(orderID)); err != nil {
			s.logger.Warn("failed to publish order events", zap.Error(err))
		}
	}
	return nil
}

func (s *OrderService) publishEvents(ctx context.Context, order *ordering.Order) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish order events", zap.Error(err))
	}
	order.ClearDomainEvents()
}
