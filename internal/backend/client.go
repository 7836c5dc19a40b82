// Package backend names the remote pizzeria API operations this client
// consumes. It is a thin typed layer over the generic apiclient façade; all
// business data lives on the remote side.
package backend

import (
	"context"
	"io"
	"net/url"

	"github.com/RafaelMenegalli/pizzaria-frontend/internal/apiclient"
)

type Client struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// SetCredential forwards to the underlying façade; only requests issued
// afterwards carry the new token.
func (c *Client) SetCredential(token string) {
	c.api.SetCredential(token)
}

// CurrentUser resolves the user behind the attached token via GET /me.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var user User
	if err := c.api.Get(ctx, "/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// CreateSession exchanges credentials for a bearer token via POST /session.
func (c *Client) CreateSession(ctx context.Context, email, password string) (SessionGrant, error) {
	body := map[string]string{"email": email, "password": password}
	var grant SessionGrant
	if err := c.api.Post(ctx, "/session", body, &grant); err != nil {
		return SessionGrant{}, err
	}
	return grant, nil
}

// CreateUser registers a new operator via POST /users. Registration does not
// establish a session.
func (c *Client) CreateUser(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.api.Post(ctx, "/users", body, nil)
}

// ListOrders returns the open orders via GET /orders.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.api.Get(ctx, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderDetail returns the line items of one order via GET /order/detail.
func (c *Client) OrderDetail(ctx context.Context, orderID string) ([]OrderItem, error) {
	var items []OrderItem
	query := url.Values{"order_id": {orderID}}
	if err := c.api.Get(ctx, "/order/detail", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCategories returns the product categories via GET /category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.api.Get(ctx, "/category", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// NewProduct is the multipart payload for POST /product.
type NewProduct struct {
	Name        string
	Price       string
	Description string
	CategoryID  string
	FileName    string
	File        io.Reader
}

// CreateProduct registers a product, forwarding the image as a multipart file
// part.
func (c *Client) CreateProduct(ctx context.Context, p NewProduct) error {
	fields := map[string]string{
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"category_id": p.CategoryID,
	}
	return c.api.PostMultipart(ctx, "/product", fields, "file", p.FileName, p.File, nil)
}
