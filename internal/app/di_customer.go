package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	customerHTTP "github.com/allisson/tokens/internal/customer/http"
	customerRepository "github.com/allisson/tokens/internal/customer/repository"
	customerUsecase "github.com/allisson/tokens/internal/customer/usecase"
)

// CustomerRepository returns the customer directory repository based on database driver.
func (c *Container) CustomerRepository() (customerUsecase.CustomerRepository, error) {
	var err error
	c.customerRepoInit.Do(func() {
		c.customerRepo, err = c.initCustomerRepository()
		if err != nil {
			c.initErrors["customerRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerRepo"]; exists {
		return nil, storedErr
	}
	return c.customerRepo, nil
}

// CustomerUseCase returns the customer directory use case.
func (c *Container) CustomerUseCase() (customerUsecase.CustomerUseCase, error) {
	var err error
	c.customerUseCaseInit.Do(func() {
		c.customerUseCase, err = c.initCustomerUseCase()
		if err != nil {
			c.initErrors["customerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerUseCase"]; exists {
		return nil, storedErr
	}
	return c.customerUseCase, nil
}

// CustomerHandler returns the HTTP handler for customer directory operations.
func (c *Container) CustomerHandler() (*customerHTTP.CustomerHandler, error) {
	var err error
	c.customerHandlerInit.Do(func() {
		c.customerHandler, err = c.initCustomerHandler()
		if err != nil {
			c.initErrors["customerHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerHandler"]; exists {
		return nil, storedErr
	}
	return c.customerHandler, nil
}

// initCustomerRepository creates the customer repository instance.
func (c *Container) initCustomerRepository() (customerUsecase.CustomerRepository, error) {
	switch c.config.DBDriver {
	case "memory":
		return customerRepository.NewSeededMemoryCustomerRepository(), nil
	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for customer repository: %w", err)
		}
		return customerRepository.NewMySQLCustomerRepository(db), nil
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for customer repository: %w", err)
		}
		return customerRepository.NewPostgreSQLCustomerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCustomerUseCase creates the customer use case with all its dependencies.
func (c *Container) initCustomerUseCase() (customerUsecase.CustomerUseCase, error) {
	customerRepo, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for customer use case: %w", err)
	}

	useCase := customerUsecase.NewCustomerUseCase(customerRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for customer use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = customerUsecase.NewCustomerUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initCustomerHandler creates the customer HTTP handler.
func (c *Container) initCustomerHandler() (*customerHTTP.CustomerHandler, error) {
	useCase, err := c.CustomerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer use case for customer handler: %w", err)
	}
	return customerHTTP.NewCustomerHandler(useCase, c.Logger()), nil
}

// registerCustomerRoutes registers the customer directory routes on the router.
func (c *Container) registerCustomerRoutes(router *gin.Engine) error {
	handler, err := c.CustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to get customer handler: %w", err)
	}
	handler.RegisterRoutes(router)
	return nil
}
