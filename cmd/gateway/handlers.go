package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront/api/checkout/v1"
	"github.com/dwikikusuma/storefront/pkg/principal"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const userHeader = "X-User-ID"

const upstreamTimeout = 5 * time.Second

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "gateway_http_request_duration_seconds",
	Help:    "HTTP request latency by route and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

type gateway struct {
	catalog  catalogv1.CatalogServiceClient
	cart     cartv1.CartServiceClient
	checkout checkoutv1.CheckoutServiceClient
	health   healthpb.HealthClient
	log      *slog.Logger
}

func newRouter(g *gateway) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), g.observe)

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", g.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := r.Group("/api/products")
	{
		products.GET("", g.listProducts)
		products.POST("", g.createProduct)
		products.GET("/featured", g.featuredProducts)
		products.GET("/category/:category", g.productsByCategory)
		products.GET("/recommendations", g.recommendedProducts)
		products.GET("/:id", g.getProduct)
		products.PATCH("/:id/featured", g.toggleFeatured)
		products.DELETE("/:id", g.deleteProduct)
	}

	cart := r.Group("/api/cart")
	{
		cart.GET("", g.cartProducts)
		cart.POST("", g.addToCart)
		cart.PUT("/:productId", g.updateQuantity)
		cart.DELETE("", g.removeFromCart)
		cart.DELETE("/:productId", g.removeProduct)
	}

	r.GET("/api/checkout/quote", g.quote)
	return r
}

func (g *gateway) observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())
	requestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())

	if c.Writer.Status() >= http.StatusInternalServerError {
		g.log.Warn("request failed",
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}

// upstream derives the gRPC call context, forwarding the caller's identity.
func upstream(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	return principal.WithUserID(ctx, c.GetHeader(userHeader)), cancel
}

func (g *gateway) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp, err := g.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Products

func (g *gateway) listProducts(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		badRequest(c, "limit must be an integer")
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.ListProducts(ctx, &catalogv1.ListProductsRequest{
		Query:  c.Query("q"),
		Limit:  limit,
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (g *gateway) createProduct(c *gin.Context) {
	var body catalogv1.CreateProductRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid json body")
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.CreateProduct(ctx, &body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.Product)
}

func (g *gateway) featuredProducts(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.GetFeatured(ctx, &catalogv1.GetFeaturedRequest{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Products)
}

func (g *gateway) productsByCategory(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.ListByCategory(ctx, &catalogv1.ListByCategoryRequest{Category: c.Param("category")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Products)
}

func (g *gateway) recommendedProducts(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		badRequest(c, "limit must be an integer")
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.Recommended(ctx, &catalogv1.RecommendedRequest{Limit: limit})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Products)
}

func (g *gateway) getProduct(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.GetProduct(ctx, &catalogv1.GetProductRequest{Id: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Product)
}

func (g *gateway) toggleFeatured(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.catalog.ToggleFeatured(ctx, &catalogv1.ToggleFeaturedRequest{Id: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Product)
}

func (g *gateway) deleteProduct(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	if _, err := g.catalog.DeleteProduct(ctx, &catalogv1.DeleteProductRequest{Id: c.Param("id")}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// Cart

type addToCartBody struct {
	ProductID string `json:"productId"`
}

type updateQuantityBody struct {
	Quantity *int32 `json:"quantity"`
}

type removeFromCartBody struct {
	ProductID string `json:"productId"`
}

func (g *gateway) cartProducts(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.cart.ListCartProducts(ctx, &cartv1.ListCartProductsRequest{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.Products)
}

func (g *gateway) addToCart(c *gin.Context) {
	var body addToCartBody
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.ProductID) == "" {
		badRequest(c, "productId is required")
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := g.cart.AddToCart(ctx, &cartv1.AddToCartRequest{ProductId: body.ProductID})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (g *gateway) updateQuantity(c *gin.Context) {
	var body updateQuantityBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
		badRequest(c, "quantity is required")
		return
	}

	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := g.cart.UpdateQuantity(ctx, &cartv1.UpdateQuantityRequest{
		ProductId: c.Param("productId"),
		Quantity:  *body.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// removeFromCart drops one product when the body names it and clears the
// whole cart otherwise. Chunked bodies report an unknown length, so only an
// explicit zero length or an empty stream means "no body".
func (g *gateway) removeFromCart(c *gin.Context) {
	var body removeFromCartBody
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, "invalid json body")
			return
		}
	}
	g.remove(c, body.ProductID)
}

func (g *gateway) removeProduct(c *gin.Context) {
	id := c.Param("productId")
	if strings.TrimSpace(id) == "" {
		badRequest(c, "productId is required")
		return
	}
	g.remove(c, id)
}

func (g *gateway) remove(c *gin.Context, productID string) {
	ctx, cancel := upstream(c)
	defer cancel()

	cart, err := g.cart.RemoveFromCart(ctx, &cartv1.RemoveFromCartRequest{ProductId: productID})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Checkout

func (g *gateway) quote(c *gin.Context) {
	ctx, cancel := upstream(c)
	defer cancel()

	resp, err := g.checkout.Quote(ctx, &checkoutv1.QuoteRequest{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// intQuery parses an optional int32 query value; out of range is an error.
func intQuery(c *gin.Context, key string) (int32, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
