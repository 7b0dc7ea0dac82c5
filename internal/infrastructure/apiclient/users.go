package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onlyfix/admin/internal/domain/user"
	"github.com/onlyfix/admin/internal/shared/pagination"
	"github.com/onlyfix/admin/internal/shared/validation"
)

func (c *Client) ListUsers(ctx context.Context, page int, filter user.Filter) (*pagination.Response[user.User], error) {
	result, err := listResource[user.User](ctx, c, "/users", filter.Values(page))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return result, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*user.User, error) {
	var u user.User
	if err := c.getResource(ctx, resourcePath("users", id), &u); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, req user.CreateRequest) (*user.User, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	var u user.User
	if err := c.sendResource(ctx, http.MethodPost, "/users", req, &u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, req user.UpdateRequest) error {
	if err := c.sendResource(ctx, http.MethodPut, resourcePath("users", id), req, nil); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	if err := c.sendResource(ctx, http.MethodDelete, resourcePath("users", id), nil, nil); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
