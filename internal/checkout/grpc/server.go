package grpc

import (
	"context"
	"errors"
	"log/slog"

	checkoutv1 "github.com/dwikikusuma/storefront/api/checkout/v1"
	"github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/principal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	checkoutv1.UnimplementedCheckoutServiceServer
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) Quote(ctx context.Context, _ *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	userID, err := principal.FromIncomingContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "not authenticated")
	}

	q, err := s.svc.Quote(ctx, userID)
	if err != nil {
		return nil, s.mapErr(err)
	}

	return toProto(q), nil
}

func (s *Server) mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, "not authenticated")
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.NotFound, "cart is empty")
	case errors.Is(err, app.ErrMixedCurrency):
		return status.Error(codes.FailedPrecondition, "cart mixes currencies")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	s.log.Error("quote failed", slog.Any("err", err))
	return status.Error(codes.Internal, "internal error")
}

func toProto(q domain.Quote) *checkoutv1.QuoteResponse {
	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &checkoutv1.QuoteLine{
			ProductId: ln.ProductID.String(),
			Name:      ln.Name,
			Quantity:  int32(ln.Quantity),
			UnitPrice: toMoney(ln.UnitPrice),
			LineTotal: toMoney(ln.LineTotal),
		})
	}

	return &checkoutv1.QuoteResponse{
		Lines: lines,
		Total: toMoney(q.Total),
	}
}

func toMoney(m domain.Money) *checkoutv1.Money {
	return &checkoutv1.Money{Currency: m.Currency, Amount: m.Amount.StringFixed(2)}
}
