package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
)

// MemoryCustomerRepository implements Customer persistence in memory.
// Safe for concurrent use. Intended for tests and local development.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*customerDomain.Customer
}

// Get retrieves a Customer by code.
func (m *MemoryCustomerRepository) Get(
	_ context.Context,
	code string,
) (*customerDomain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customer, ok := m.customers[code]
	if !ok {
		return nil, customerDomain.ErrCustomerNotFound
	}

	clone := *customer
	return &clone, nil
}

// List retrieves all customers ordered by code.
func (m *MemoryCustomerRepository) List(_ context.Context) ([]*customerDomain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customers := make([]*customerDomain.Customer, 0, len(m.customers))
	for _, customer := range m.customers {
		clone := *customer
		customers = append(customers, &clone)
	}

	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Code < customers[j].Code
	})

	return customers, nil
}

// NewMemoryCustomerRepository creates an in-memory Customer repository
// holding the given customers.
func NewMemoryCustomerRepository(customers []*customerDomain.Customer) *MemoryCustomerRepository {
	byCode := make(map[string]*customerDomain.Customer, len(customers))
	for _, customer := range customers {
		clone := *customer
		byCode[customer.Code] = &clone
	}
	return &MemoryCustomerRepository{customers: byCode}
}

// NewSeededMemoryCustomerRepository creates an in-memory Customer repository
// preloaded with the default partner directory.
func NewSeededMemoryCustomerRepository() *MemoryCustomerRepository {
	now := time.Now().UTC()
	return NewMemoryCustomerRepository([]*customerDomain.Customer{
		{
			Code:      "CUST001",
			Name:      "ABA Air",
			Endpoints: []string{"/save_vouchers", "/save_dn_cn", "/save_payment", "/get_balance"},
			CreatedAt: now,
		},
		{
			Code:      "CUST002",
			Name:      "AL-MATAR Flights",
			Endpoints: []string{"/save_vouchers", "/save_dn_cn"},
			CreatedAt: now,
		},
		{
			Code:      "CUST003",
			Name:      "Sky Consultants Inc.",
			Endpoints: []string{"/get_reports", "/get_balance"},
			CreatedAt: now,
		},
		{
			Code:      "CUST004",
			Name:      "Global Travel Co",
			Endpoints: []string{"/save_vouchers", "/save_payment", "/issue_refund"},
			CreatedAt: now,
		},
	})
}
