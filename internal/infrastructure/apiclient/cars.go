package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onlyfix/admin/internal/domain/car"
	"github.com/onlyfix/admin/internal/shared/pagination"
	"github.com/onlyfix/admin/internal/shared/validation"
)

func (c *Client) ListCars(ctx context.Context, page int, filter car.Filter) (*pagination.Response[car.Car], error) {
	result, err := listResource[car.Car](ctx, c, "/cars", filter.Values(page))
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return result, nil
}

func (c *Client) GetCar(ctx context.Context, id int) (*car.Car, error) {
	var out car.Car
	if err := c.getResource(ctx, resourcePath("cars", id), &out); err != nil {
		return nil, fmt.Errorf("get car %d: %w", id, err)
	}
	return &out, nil
}

func (c *Client) CreateCar(ctx context.Context, req car.CreateRequest) (*car.Car, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	var out car.Car
	if err := c.sendResource(ctx, http.MethodPost, "/cars", req, &out); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateCar(ctx context.Context, id int, req car.UpdateRequest) error {
	if err := c.sendResource(ctx, http.MethodPut, resourcePath("cars", id), req, nil); err != nil {
		return fmt.Errorf("update car %d: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteCar(ctx context.Context, id int) error {
	if err := c.sendResource(ctx, http.MethodDelete, resourcePath("cars", id), nil, nil); err != nil {
		return fmt.Errorf("delete car %d: %w", id, err)
	}
	return nil
}
