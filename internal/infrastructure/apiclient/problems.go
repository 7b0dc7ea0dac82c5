package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onlyfix/admin/internal/domain/problem"
	"github.com/onlyfix/admin/internal/shared/pagination"
	"github.com/onlyfix/admin/internal/shared/validation"
)

func (c *Client) ListProblems(ctx context.Context, page int, filter problem.Filter) (*pagination.Response[problem.Problem], error) {
	result, err := listResource[problem.Problem](ctx, c, "/problems", filter.Values(page))
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return result, nil
}

func (c *Client) GetProblem(ctx context.Context, id int) (*problem.Problem, error) {
	var out problem.Problem
	if err := c.getResource(ctx, resourcePath("problems", id), &out); err != nil {
		return nil, fmt.Errorf("get problem %d: %w", id, err)
	}
	return &out, nil
}

func (c *Client) CreateProblem(ctx context.Context, req problem.CreateRequest) (*problem.Problem, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	var out problem.Problem
	if err := c.sendResource(ctx, http.MethodPost, "/problems", req, &out); err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateProblem(ctx context.Context, id int, req problem.UpdateRequest) error {
	if err := c.sendResource(ctx, http.MethodPut, resourcePath("problems", id), req, nil); err != nil {
		return fmt.Errorf("update problem %d: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteProblem(ctx context.Context, id int) error {
	if err := c.sendResource(ctx, http.MethodDelete, resourcePath("problems", id), nil, nil); err != nil {
		return fmt.Errorf("delete problem %d: %w", id, err)
	}
	return nil
}

func (c *Client) ProblemStatistics(ctx context.Context) (*problem.Statistics, error) {
	var stats problem.Statistics
	if err := c.getResource(ctx, "/problems/statistics", &stats); err != nil {
		return nil, fmt.Errorf("problem statistics: %w", err)
	}
	return &stats, nil
}
