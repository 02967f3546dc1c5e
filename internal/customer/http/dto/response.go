// Package dto provides data transfer objects for customer directory responses.
package dto

import (
	customerDomain "github.com/allisson/tokens/internal/customer/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Endpoints []string `json:"endpoints"`
}

// MapCustomerToResponse converts a domain customer to an API response.
func MapCustomerToResponse(customer *customerDomain.Customer) CustomerResponse {
	return CustomerResponse{
		Code:      customer.Code,
		Name:      customer.Name,
		Endpoints: customer.Endpoints,
	}
}

// ListCustomersResponse represents the customer directory in API responses.
type ListCustomersResponse struct {
	Data []CustomerResponse `json:"data"`
}

// MapCustomersToListResponse converts a slice of domain customers to a list response.
func MapCustomersToListResponse(customers []*customerDomain.Customer) ListCustomersResponse {
	data := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		data = append(data, MapCustomerToResponse(customer))
	}
	return ListCustomersResponse{Data: data}
}
