// Package catalogv1 defines storefront.catalog.v1.CatalogService. Messages are
// exchanged with the JSON codec from pkg/grpcjson.
//
// This is hand-written code standing in for protoc output: the types and the
// client/server plumbing mirror what protoc-gen-go-grpc would emit, without a
// .proto file or generation step. JSON field names and full method names are
// the wire contract.
package catalogv1

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CatalogService_CreateProduct_FullMethodName  = "/storefront.catalog.v1.CatalogService/CreateProduct"
	CatalogService_GetProduct_FullMethodName     = "/storefront.catalog.v1.CatalogService/GetProduct"
	CatalogService_ListProducts_FullMethodName   = "/storefront.catalog.v1.CatalogService/ListProducts"
	CatalogService_ListByCategory_FullMethodName = "/storefront.catalog.v1.CatalogService/ListByCategory"
	CatalogService_Recommended_FullMethodName    = "/storefront.catalog.v1.CatalogService/Recommended"
	CatalogService_DeleteProduct_FullMethodName  = "/storefront.catalog.v1.CatalogService/DeleteProduct"
	CatalogService_GetFeatured_FullMethodName    = "/storefront.catalog.v1.CatalogService/GetFeatured"
	CatalogService_ToggleFeatured_FullMethodName = "/storefront.catalog.v1.CatalogService/ToggleFeatured"
)

type Money struct {
	Currency string `json:"currency,omitempty"`
	// Decimal string, e.g. "19.90".
	Amount string `json:"amount,omitempty"`
}

type Product struct {
	Id            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Price         *Money `json:"price,omitempty"`
	Image         string `json:"image,omitempty"`
	Category      string `json:"category,omitempty"`
	IsFeatured    bool   `json:"is_featured,omitempty"`
	CreatedAtUnix int64  `json:"created_at_unix,omitempty"`
	UpdatedAtUnix int64  `json:"updated_at_unix,omitempty"`
}

type CreateProductRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       *Money `json:"price,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
	IsFeatured  bool   `json:"is_featured,omitempty"`
}

type CreateProductResponse struct {
	Product *Product `json:"product,omitempty"`
}

type GetProductRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *GetProductRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetProductResponse struct {
	Product *Product `json:"product,omitempty"`
}

type ListProductsRequest struct {
	Query  string `json:"query,omitempty"`
	Limit  int32  `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

func (x *ListProductsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *ListProductsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListProductsRequest) GetCursor() string {
	if x != nil {
		return x.Cursor
	}
	return ""
}

type ListProductsResponse struct {
	Products   []*Product `json:"products"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type ListByCategoryRequest struct {
	Category string `json:"category,omitempty"`
}

func (x *ListByCategoryRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type RecommendedRequest struct {
	Limit int32 `json:"limit,omitempty"`
}

func (x *RecommendedRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type GetFeaturedRequest struct{}

type ProductsResponse struct {
	Products []*Product `json:"products"`
}

type DeleteProductRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *DeleteProductRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteProductResponse struct{}

type ToggleFeaturedRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *ToggleFeaturedRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ToggleFeaturedResponse struct {
	Product *Product `json:"product,omitempty"`
}

type CatalogServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	ListByCategory(context.Context, *ListByCategoryRequest) (*ProductsResponse, error)
	Recommended(context.Context, *RecommendedRequest) (*ProductsResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*DeleteProductResponse, error)
	GetFeatured(context.Context, *GetFeaturedRequest) (*ProductsResponse, error)
	ToggleFeatured(context.Context, *ToggleFeaturedRequest) (*ToggleFeaturedResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded for forward compatibility.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}
func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedCatalogServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedCatalogServiceServer) ListByCategory(context.Context, *ListByCategoryRequest) (*ProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListByCategory not implemented")
}
func (UnimplementedCatalogServiceServer) Recommended(context.Context, *RecommendedRequest) (*ProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Recommended not implemented")
}
func (UnimplementedCatalogServiceServer) DeleteProduct(context.Context, *DeleteProductRequest) (*DeleteProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}
func (UnimplementedCatalogServiceServer) GetFeatured(context.Context, *GetFeaturedRequest) (*ProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFeatured not implemented")
}
func (UnimplementedCatalogServiceServer) ToggleFeatured(context.Context, *ToggleFeaturedRequest) (*ToggleFeaturedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleFeatured not implemented")
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.catalog.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProduct", Handler: grpcjson.Unary(CatalogService_CreateProduct_FullMethodName, CatalogServiceServer.CreateProduct)},
		{MethodName: "GetProduct", Handler: grpcjson.Unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct)},
		{MethodName: "ListProducts", Handler: grpcjson.Unary(CatalogService_ListProducts_FullMethodName, CatalogServiceServer.ListProducts)},
		{MethodName: "ListByCategory", Handler: grpcjson.Unary(CatalogService_ListByCategory_FullMethodName, CatalogServiceServer.ListByCategory)},
		{MethodName: "Recommended", Handler: grpcjson.Unary(CatalogService_Recommended_FullMethodName, CatalogServiceServer.Recommended)},
		{MethodName: "DeleteProduct", Handler: grpcjson.Unary(CatalogService_DeleteProduct_FullMethodName, CatalogServiceServer.DeleteProduct)},
		{MethodName: "GetFeatured", Handler: grpcjson.Unary(CatalogService_GetFeatured_FullMethodName, CatalogServiceServer.GetFeatured)},
		{MethodName: "ToggleFeatured", Handler: grpcjson.Unary(CatalogService_ToggleFeatured_FullMethodName, CatalogServiceServer.ToggleFeatured)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/catalog/v1",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient interface {
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	ListByCategory(ctx context.Context, in *ListByCategoryRequest, opts ...grpc.CallOption) (*ProductsResponse, error)
	Recommended(ctx context.Context, in *RecommendedRequest, opts ...grpc.CallOption) (*ProductsResponse, error)
	DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error)
	GetFeatured(ctx context.Context, in *GetFeaturedRequest, opts ...grpc.CallOption) (*ProductsResponse, error)
	ToggleFeatured(ctx context.Context, in *ToggleFeaturedRequest, opts ...grpc.CallOption) (*ToggleFeaturedResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error) {
	out := new(CreateProductResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_CreateProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	out := new(GetProductResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_GetProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	out := new(ListProductsResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_ListProducts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListByCategory(ctx context.Context, in *ListByCategoryRequest, opts ...grpc.CallOption) (*ProductsResponse, error) {
	out := new(ProductsResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_ListByCategory_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) Recommended(ctx context.Context, in *RecommendedRequest, opts ...grpc.CallOption) (*ProductsResponse, error) {
	out := new(ProductsResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_Recommended_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*DeleteProductResponse, error) {
	out := new(DeleteProductResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_DeleteProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetFeatured(ctx context.Context, in *GetFeaturedRequest, opts ...grpc.CallOption) (*ProductsResponse, error) {
	out := new(ProductsResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_GetFeatured_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ToggleFeatured(ctx context.Context, in *ToggleFeaturedRequest, opts ...grpc.CallOption) (*ToggleFeaturedResponse, error) {
	out := new(ToggleFeaturedResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CatalogService_ToggleFeatured_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
