package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customerDomain "github.com/allisson/tokens/internal/customer/domain"
	"github.com/allisson/tokens/internal/customer/http/dto"
	usecaseMocks "github.com/allisson/tokens/internal/customer/usecase/mocks"
)

func setupCustomerTestHandler(t *testing.T) (*CustomerHandler, *usecaseMocks.MockCustomerUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCustomerUseCase := &usecaseMocks.MockCustomerUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewCustomerHandler(mockCustomerUseCase, logger)

	return handler, mockCustomerUseCase
}

func createTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

func TestCustomerHandler_ListCustomersHandler(t *testing.T) {
	t.Run("Success_ListCustomers", func(t *testing.T) {
		handler, mockUseCase := setupCustomerTestHandler(t)

		customers := []*customerDomain.Customer{
			{
				Code:      "CUST001",
				Name:      "ABA Air",
				Endpoints: []string{"/save_vouchers", "/get_balance"},
				CreatedAt: time.Now().UTC(),
			},
		}
		mockUseCase.On("List", mock.Anything).Return(customers, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/customers")
		handler.ListCustomersHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListCustomersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "CUST001", response.Data[0].Code)
		assert.Equal(t, []string{"/save_vouchers", "/get_balance"}, response.Data[0].Endpoints)
	})
}

func TestCustomerHandler_GetCustomerHandler(t *testing.T) {
	t.Run("Success_GetCustomer", func(t *testing.T) {
		handler, mockUseCase := setupCustomerTestHandler(t)

		customer := &customerDomain.Customer{
			Code:      "CUST001",
			Name:      "ABA Air",
			Endpoints: []string{"/get_balance"},
		}
		mockUseCase.On("Get", mock.Anything, "CUST001").Return(customer, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/customers/CUST001")
		c.Params = gin.Params{{Key: "code", Value: "CUST001"}}

		handler.GetCustomerHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CustomerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ABA Air", response.Name)
	})

	t.Run("Error_CustomerNotFound", func(t *testing.T) {
		handler, mockUseCase := setupCustomerTestHandler(t)

		mockUseCase.On("Get", mock.Anything, "CUST999").
			Return(nil, customerDomain.ErrCustomerNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/customers/CUST999")
		c.Params = gin.Params{{Key: "code", Value: "CUST999"}}

		handler.GetCustomerHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
