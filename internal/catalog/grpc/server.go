package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.CreateProductResponse, error) {
	if req == nil || req.Price == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body/price")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Price.Amount))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "price amount must be a decimal")
	}

	product, err := s.svc.CreateProduct(ctx, app.NewProduct{
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Price.Currency,
		Amount:      amount,
		Image:       req.Image,
		Category:    req.Category,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.CreateProductResponse{
		Product: toProto(product),
	}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	p, err := s.svc.GetProduct(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.GetProductResponse{Product: toProto(p)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, next, err := s.svc.ListProducts(ctx, req.GetQuery(), int(req.GetLimit()), req.GetCursor())
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.ListProductsResponse{Products: toProtoList(products), NextCursor: next}, nil
}

func (s *Server) ListByCategory(ctx context.Context, req *catalogv1.ListByCategoryRequest) (*catalogv1.ProductsResponse, error) {
	products, err := s.svc.ListByCategory(ctx, req.GetCategory())
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.ProductsResponse{Products: toProtoList(products)}, nil
}

func (s *Server) Recommended(ctx context.Context, req *catalogv1.RecommendedRequest) (*catalogv1.ProductsResponse, error) {
	products, err := s.svc.Recommended(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.ProductsResponse{Products: toProtoList(products)}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *catalogv1.DeleteProductRequest) (*catalogv1.DeleteProductResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.DeleteProduct(ctx, id); err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.DeleteProductResponse{}, nil
}

func (s *Server) GetFeatured(ctx context.Context, _ *catalogv1.GetFeaturedRequest) (*catalogv1.ProductsResponse, error) {
	products, err := s.svc.GetFeatured(ctx)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.ProductsResponse{Products: toProtoList(products)}, nil
}

func (s *Server) ToggleFeatured(ctx context.Context, req *catalogv1.ToggleFeaturedRequest) (*catalogv1.ToggleFeaturedResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	p, err := s.svc.ToggleFeatured(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalogv1.ToggleFeaturedResponse{Product: toProto(p)}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id must be a uuid")
	}
	return id, nil
}

func toProto(p domain.Product) *catalogv1.Product {
	return &catalogv1.Product{
		Id:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price: &catalogv1.Money{
			Currency: p.Price.Currency,
			Amount:   p.Price.Amount.StringFixed(2),
		},
		Image:         p.Image,
		Category:      p.Category,
		IsFeatured:    p.IsFeatured,
		CreatedAtUnix: p.CreatedAt.Unix(),
		UpdatedAtUnix: p.UpdatedAt.Unix(),
	}
}

func toProtoList(products []domain.Product) []*catalogv1.Product {
	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}
	return out
}

func (s *Server) mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, "product not found")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	s.log.Error("catalog request failed", slog.Any("err", err))
	return status.Error(codes.Internal, "internal error")
}
