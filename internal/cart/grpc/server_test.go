package grpc

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/principal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type repo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]domain.Cart
	err   error
}

func (r *repo) Load(_ context.Context, id uuid.UUID) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return domain.Cart{}, r.err
	}
	c, ok := r.carts[id]
	if !ok {
		return domain.Cart{}, app.ErrOwnerNotFound
	}
	return c, nil
}

func (r *repo) Save(_ context.Context, c domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.carts[c.OwnerID].Version != c.Version {
		return domain.Cart{}, app.ErrVersionConflict
	}
	c.Version++
	r.carts[c.OwnerID] = c
	return c, nil
}

type products map[uuid.UUID]app.Product

func (p products) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := p[id]
	return ok, nil
}

func (p products) GetMany(_ context.Context, ids []uuid.UUID) ([]app.Product, error) {
	var out []app.Product
	for _, id := range ids {
		if prod, ok := p[id]; ok {
			out = append(out, prod)
		}
	}
	return out, nil
}

type fixture struct {
	client  cartv1.CartServiceClient
	repo    *repo
	owner   uuid.UUID
	product uuid.UUID
}

func setup(t *testing.T) fixture {
	t.Helper()

	owner, product := uuid.New(), uuid.New()
	r := &repo{carts: map[uuid.UUID]domain.Cart{owner: {OwnerID: owner, Lines: domain.Lines{}}}}
	catalog := products{product: {ID: product, Name: "Mug", Currency: "USD", Price: decimal.RequireFromString("8.5")}}
	svc := app.NewService(r, catalog, nil, logger.Discard(), 3)
	t.Cleanup(func() { _ = svc.Close(context.Background()) })

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	cartv1.RegisterCartServiceServer(srv, NewServer(svc, logger.Discard()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return fixture{client: cartv1.NewCartServiceClient(conn), repo: r, owner: owner, product: product}
}

func (f fixture) as(id uuid.UUID) context.Context {
	return principal.WithUserID(context.Background(), id.String())
}

func TestCartServer_Flow(t *testing.T) {
	f := setup(t)
	ctx := f.as(f.owner)

	cart, err := f.client.AddToCart(ctx, &cartv1.AddToCartRequest{ProductId: f.product.String()})
	require.NoError(t, err)
	cart, err = f.client.AddToCart(ctx, &cartv1.AddToCartRequest{ProductId: f.product.String()})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.EqualValues(t, 2, cart.Lines[0].Quantity)
	require.Equal(t, f.owner.String(), cart.UserId)

	list, err := f.client.ListCartProducts(ctx, &cartv1.ListCartProductsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	require.Equal(t, "Mug", list.Products[0].Name)
	require.Equal(t, "8.50", list.Products[0].Price)
	require.EqualValues(t, 2, list.Products[0].Quantity)

	cart, err = f.client.UpdateQuantity(ctx, &cartv1.UpdateQuantityRequest{ProductId: f.product.String(), Quantity: 5})
	require.NoError(t, err)
	require.EqualValues(t, 5, cart.Lines[0].Quantity)

	cart, err = f.client.RemoveFromCart(ctx, &cartv1.RemoveFromCartRequest{})
	require.NoError(t, err)
	require.Empty(t, cart.Lines)

	got, err := f.client.GetCart(ctx, &cartv1.GetCartRequest{})
	require.NoError(t, err)
	require.Empty(t, got.Lines)
	require.EqualValues(t, 4, got.Version)
}

func TestCartServer_Errors(t *testing.T) {
	f := setup(t)

	cases := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"missing principal", func() error {
			_, err := f.client.GetCart(context.Background(), &cartv1.GetCartRequest{})
			return err
		}, codes.Unauthenticated},
		{"unknown owner", func() error {
			_, err := f.client.GetCart(f.as(uuid.New()), &cartv1.GetCartRequest{})
			return err
		}, codes.Unauthenticated},
		{"bad product id", func() error {
			_, err := f.client.AddToCart(f.as(f.owner), &cartv1.AddToCartRequest{ProductId: "nope"})
			return err
		}, codes.InvalidArgument},
		{"unknown product", func() error {
			_, err := f.client.AddToCart(f.as(f.owner), &cartv1.AddToCartRequest{ProductId: uuid.NewString()})
			return err
		}, codes.NotFound},
		{"quantity for product not in cart", func() error {
			_, err := f.client.UpdateQuantity(f.as(f.owner), &cartv1.UpdateQuantityRequest{ProductId: f.product.String(), Quantity: 2})
			return err
		}, codes.NotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, status.Code(tc.call()))
		})
	}

	t.Run("add beyond the quantity limit", func(t *testing.T) {
		f.repo.mu.Lock()
		c := f.repo.carts[f.owner]
		c.Lines = domain.Lines{{ProductRef: f.product, Quantity: domain.MaxQuantity}}
		f.repo.carts[f.owner] = c
		f.repo.mu.Unlock()

		_, err := f.client.AddToCart(f.as(f.owner), &cartv1.AddToCartRequest{ProductId: f.product.String()})
		require.Equal(t, codes.InvalidArgument, status.Code(err))

		got, err := f.client.GetCart(f.as(f.owner), &cartv1.GetCartRequest{})
		require.NoError(t, err)
		require.Len(t, got.Lines, 1)
		require.EqualValues(t, domain.MaxQuantity, got.Lines[0].Quantity)
	})

	t.Run("store failure hides details", func(t *testing.T) {
		f.repo.mu.Lock()
		f.repo.err = errors.New("pq: connection reset")
		f.repo.mu.Unlock()

		_, err := f.client.GetCart(f.as(f.owner), &cartv1.GetCartRequest{})
		st, _ := status.FromError(err)
		require.Equal(t, codes.Internal, st.Code())
		require.Equal(t, "internal error", st.Message())
	})
}
