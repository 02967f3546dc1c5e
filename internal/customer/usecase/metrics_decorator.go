package usecase

import (
	"context"
	"time"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
	"github.com/allisson/tokens/internal/metrics"
)

// customerUseCaseWithMetrics decorates CustomerUseCase with metrics instrumentation.
type customerUseCaseWithMetrics struct {
	next    CustomerUseCase
	metrics metrics.BusinessMetrics
}

// NewCustomerUseCaseWithMetrics wraps a CustomerUseCase with metrics recording.
func NewCustomerUseCaseWithMetrics(useCase CustomerUseCase, m metrics.BusinessMetrics) CustomerUseCase {
	return &customerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Get records metrics for customer retrieval operations.
func (c *customerUseCaseWithMetrics) Get(ctx context.Context, code string) (*customerDomain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Get(ctx, code)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "customer", "customer_get", status)
	c.metrics.RecordDuration(ctx, "customer", "customer_get", time.Since(start), status)

	return customer, err
}

// List records metrics for customer listing operations.
func (c *customerUseCaseWithMetrics) List(ctx context.Context) ([]*customerDomain.Customer, error) {
	start := time.Now()
	customers, err := c.next.List(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "customer", "customer_list", status)
	c.metrics.RecordDuration(ctx, "customer", "customer_list", time.Since(start), status)

	return customers, err
}
