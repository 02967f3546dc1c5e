package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	tokenHTTP "github.com/allisson/tokens/internal/token/http"
	tokenRepository "github.com/allisson/tokens/internal/token/repository"
	tokenService "github.com/allisson/tokens/internal/token/service"
	tokenUsecase "github.com/allisson/tokens/internal/token/usecase"
)

// TokenRepository returns the token repository based on database driver.
func (c *Container) TokenRepository() (tokenUsecase.TokenRepository, error) {
	var err error
	c.tokenRepoInit.Do(func() {
		c.tokenRepo, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepo"]; exists {
		return nil, storedErr
	}
	return c.tokenRepo, nil
}

// TokenUseCase returns the token lifecycle use case.
func (c *Container) TokenUseCase() (tokenUsecase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the HTTP handler for token management operations.
func (c *Container) TokenHandler() (*tokenHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// initTokenRepository creates the token repository instance.
func (c *Container) initTokenRepository() (tokenUsecase.TokenRepository, error) {
	switch c.config.DBDriver {
	case "memory":
		return tokenRepository.NewMemoryTokenRepository(), nil
	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for token repository: %w", err)
		}
		return tokenRepository.NewMySQLTokenRepository(db), nil
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for token repository: %w", err)
		}
		return tokenRepository.NewPostgreSQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (tokenUsecase.TokenUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for token use case: %w", err)
	}

	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	customerRepo, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for token use case: %w", err)
	}

	tokenCache, err := c.TokenCache()
	if err != nil {
		return nil, fmt.Errorf("failed to get token cache for token use case: %w", err)
	}

	credentialService := tokenService.NewCredentialService(c.config.TokenPrefix)

	useCase := tokenUsecase.NewTokenUseCase(
		txManager,
		tokenRepo,
		customerRepo,
		credentialService,
		tokenCache,
		c.config.TokenCacheTTL,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
	}
	if businessMetrics != nil {
		useCase = tokenUsecase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initTokenHandler creates the token HTTP handler.
func (c *Container) initTokenHandler() (*tokenHTTP.TokenHandler, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return tokenHTTP.NewTokenHandler(useCase, c.Logger()), nil
}

// registerTokenRoutes registers the token routes on the router. Rate limiting,
// when enabled, applies to the token endpoints only.
func (c *Container) registerTokenRoutes(router *gin.Engine) error {
	handler, err := c.TokenHandler()
	if err != nil {
		return fmt.Errorf("failed to get token handler: %w", err)
	}

	target := gin.IRouter(router)
	if c.config.RateLimitEnabled {
		c.rateLimiter = tokenHTTP.NewRateLimiter(
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			c.Logger(),
		)
		group := router.Group("")
		group.Use(c.rateLimiter.Middleware())
		target = group
	}

	handler.RegisterRoutes(target)
	return nil
}
