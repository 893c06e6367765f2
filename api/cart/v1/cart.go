// Package cartv1 defines storefront.cart.v1.CartService. The caller is
// identified by the x-user-id metadata entry, never by a request field.
//
// The messages, client and service descriptor are written by hand in the
// shape protoc-gen-go-grpc produces and travel over the JSON codec in
// pkg/grpcjson. There is no .proto file; keep field names and method paths
// stable, since they are the wire contract. Swapping in generated code later
// only changes this package and the codec registration.
package cartv1

import (
	"context"

	"github.com/dwikikusuma/storefront/pkg/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CartService_GetCart_FullMethodName          = "/storefront.cart.v1.CartService/GetCart"
	CartService_AddToCart_FullMethodName        = "/storefront.cart.v1.CartService/AddToCart"
	CartService_UpdateQuantity_FullMethodName   = "/storefront.cart.v1.CartService/UpdateQuantity"
	CartService_RemoveFromCart_FullMethodName   = "/storefront.cart.v1.CartService/RemoveFromCart"
	CartService_ListCartProducts_FullMethodName = "/storefront.cart.v1.CartService/ListCartProducts"
)

type CartLine struct {
	ProductId string `json:"product_id,omitempty"`
	Quantity  int32  `json:"quantity,omitempty"`
}

type Cart struct {
	UserId  string      `json:"user_id,omitempty"`
	Lines   []*CartLine `json:"lines"`
	Version int64       `json:"version,omitempty"`
}

type GetCartRequest struct{}

type AddToCartRequest struct {
	ProductId string `json:"product_id,omitempty"`
}

func (x *AddToCartRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type UpdateQuantityRequest struct {
	ProductId string `json:"product_id,omitempty"`
	Quantity  int32  `json:"quantity"`
}

func (x *UpdateQuantityRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *UpdateQuantityRequest) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

// RemoveFromCartRequest clears the whole cart when ProductId is empty.
type RemoveFromCartRequest struct {
	ProductId string `json:"product_id,omitempty"`
}

func (x *RemoveFromCartRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type ListCartProductsRequest struct{}

type CartProduct struct {
	Id          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Price       string `json:"price,omitempty"`
	IsFeatured  bool   `json:"is_featured,omitempty"`
	Quantity    int32  `json:"quantity,omitempty"`
}

type ListCartProductsResponse struct {
	Products []*CartProduct `json:"products"`
}

type CartServiceServer interface {
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddToCart(context.Context, *AddToCartRequest) (*Cart, error)
	UpdateQuantity(context.Context, *UpdateQuantityRequest) (*Cart, error)
	RemoveFromCart(context.Context, *RemoveFromCartRequest) (*Cart, error)
	ListCartProducts(context.Context, *ListCartProductsRequest) (*ListCartProductsResponse, error)
}

type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) GetCart(context.Context, *GetCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}
func (UnimplementedCartServiceServer) AddToCart(context.Context, *AddToCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToCart not implemented")
}
func (UnimplementedCartServiceServer) UpdateQuantity(context.Context, *UpdateQuantityRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateQuantity not implemented")
}
func (UnimplementedCartServiceServer) RemoveFromCart(context.Context, *RemoveFromCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveFromCart not implemented")
}
func (UnimplementedCartServiceServer) ListCartProducts(context.Context, *ListCartProductsRequest) (*ListCartProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCartProducts not implemented")
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.cart.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCart", Handler: grpcjson.Unary(CartService_GetCart_FullMethodName, CartServiceServer.GetCart)},
		{MethodName: "AddToCart", Handler: grpcjson.Unary(CartService_AddToCart_FullMethodName, CartServiceServer.AddToCart)},
		{MethodName: "UpdateQuantity", Handler: grpcjson.Unary(CartService_UpdateQuantity_FullMethodName, CartServiceServer.UpdateQuantity)},
		{MethodName: "RemoveFromCart", Handler: grpcjson.Unary(CartService_RemoveFromCart_FullMethodName, CartServiceServer.RemoveFromCart)},
		{MethodName: "ListCartProducts", Handler: grpcjson.Unary(CartService_ListCartProducts_FullMethodName, CartServiceServer.ListCartProducts)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/cart/v1",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient interface {
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error)
	AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*Cart, error)
	UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*Cart, error)
	RemoveFromCart(ctx context.Context, in *RemoveFromCartRequest, opts ...grpc.CallOption) (*Cart, error)
	ListCartProducts(ctx context.Context, in *ListCartProductsRequest, opts ...grpc.CallOption) (*ListCartProductsResponse, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc}
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := grpcjson.Invoke(ctx, c.cc, CartService_GetCart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := grpcjson.Invoke(ctx, c.cc, CartService_AddToCart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) UpdateQuantity(ctx context.Context, in *UpdateQuantityRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := grpcjson.Invoke(ctx, c.cc, CartService_UpdateQuantity_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) RemoveFromCart(ctx context.Context, in *RemoveFromCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := grpcjson.Invoke(ctx, c.cc, CartService_RemoveFromCart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) ListCartProducts(ctx context.Context, in *ListCartProductsRequest, opts ...grpc.CallOption) (*ListCartProductsResponse, error) {
	out := new(ListCartProductsResponse)
	if err := grpcjson.Invoke(ctx, c.cc, CartService_ListCartProducts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
