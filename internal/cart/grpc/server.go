package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/principal"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) GetCart(ctx context.Context, _ *cartv1.GetCartRequest) (*cartv1.Cart, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.svc.GetCart(ctx, owner)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) AddToCart(ctx context.Context, req *cartv1.AddToCartRequest) (*cartv1.Cart, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	productID, err := parseProductID(req.GetProductId())
	if err != nil {
		return nil, err
	}

	cart, err := s.svc.AddToCart(ctx, owner, productID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) UpdateQuantity(ctx context.Context, req *cartv1.UpdateQuantityRequest) (*cartv1.Cart, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	productID, err := parseProductID(req.GetProductId())
	if err != nil {
		return nil, err
	}

	cart, err := s.svc.UpdateQuantity(ctx, owner, productID, int(req.GetQuantity()))
	if err != nil {
		return nil, s.mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) RemoveFromCart(ctx context.Context, req *cartv1.RemoveFromCartRequest) (*cartv1.Cart, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var productID *uuid.UUID
	if strings.TrimSpace(req.GetProductId()) != "" {
		id, err := parseProductID(req.GetProductId())
		if err != nil {
			return nil, err
		}
		productID = &id
	}

	cart, err := s.svc.ClearOrRemove(ctx, owner, productID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return toProto(cart), nil
}

func (s *Server) ListCartProducts(ctx context.Context, _ *cartv1.ListCartProductsRequest) (*cartv1.ListCartProductsResponse, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.svc.ListCartWithProducts(ctx, owner)
	if err != nil {
		return nil, s.mapErr(err)
	}

	out := make([]*cartv1.CartProduct, 0, len(items))
	for _, it := range items {
		out = append(out, &cartv1.CartProduct{
			Id:          it.ID.String(),
			Name:        it.Name,
			Description: it.Description,
			Image:       it.Image,
			Category:    it.Category,
			Currency:    it.Currency,
			Price:       it.Price.StringFixed(2),
			IsFeatured:  it.IsFeatured,
			Quantity:    int32(it.Quantity),
		})
	}
	return &cartv1.ListCartProductsResponse{Products: out}, nil
}

func ownerFrom(ctx context.Context) (uuid.UUID, error) {
	id, err := principal.FromIncomingContext(ctx)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "not authenticated")
	}
	return id, nil
}

func parseProductID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "product_id must be a uuid")
	}
	return id, nil
}

func toProto(cart domain.Cart) *cartv1.Cart {
	lines := make([]*cartv1.CartLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, &cartv1.CartLine{
			ProductId: l.ProductRef.String(),
			Quantity:  int32(l.Quantity),
		})
	}

	return &cartv1.Cart{
		UserId:  cart.OwnerID.String(),
		Lines:   lines,
		Version: cart.Version,
	}
}

func (s *Server) mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, "not authenticated")
	case errors.Is(err, app.ErrProductNotInCart):
		return status.Error(codes.NotFound, "product not in cart")
	case errors.Is(err, app.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")
	case errors.Is(err, app.ErrQuantityLimit):
		return status.Error(codes.InvalidArgument, "quantity limit exceeded")
	case errors.Is(err, app.ErrVersionConflict):
		return status.Error(codes.Aborted, "cart was modified concurrently, retry")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	s.log.Error("cart request failed", slog.Any("err", err))
	return status.Error(codes.Internal, "internal error")
}
