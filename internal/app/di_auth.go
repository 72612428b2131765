package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/contacts/internal/auth/http"
	authRepository "github.com/allisson/contacts/internal/auth/repository"
	authService "github.com/allisson/contacts/internal/auth/service"
	authUseCase "github.com/allisson/contacts/internal/auth/usecase"
)

// authComponents holds the auth module dependencies.
type authComponents struct {
	tokenCodec       authService.TokenCodec
	revokedTokenRepo authUseCase.RevokedTokenRepository
	useCase          authUseCase.AuthUseCase
	handler          *authHTTP.Handler

	tokenCodecInit       sync.Once
	revokedTokenRepoInit sync.Once
	useCaseInit          sync.Once
	handlerInit          sync.Once
}

// TokenCodec returns the access-token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.auth.tokenCodecInit.Do(func() {
		if c.config.JWTSecret == "" {
			c.initErrors["tokenCodec"] = fmt.Errorf("JWT_SECRET is required")
			return
		}
		c.auth.tokenCodec = authService.NewTokenCodec(c.config.JWTSecret)
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.auth.tokenCodec, nil
}

// RevokedTokenRepository returns the revocation-record repository instance.
func (c *Container) RevokedTokenRepository() (authUseCase.RevokedTokenRepository, error) {
	c.auth.revokedTokenRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["revokedTokenRepo"] = fmt.Errorf(
				"failed to get database for revoked token repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.auth.revokedTokenRepo = authRepository.NewMySQLRevokedTokenRepository(db)
		case "postgres":
			c.auth.revokedTokenRepo = authRepository.NewPostgreSQLRevokedTokenRepository(db)
		default:
			c.initErrors["revokedTokenRepo"] = fmt.Errorf(
				"unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["revokedTokenRepo"]; exists {
		return nil, storedErr
	}
	return c.auth.revokedTokenRepo, nil
}

// AuthUseCase returns the auth use case instance.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	c.auth.useCaseInit.Do(func() {
		tokenCodec, err := c.TokenCodec()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get token codec for auth use case: %w", err)
			return
		}

		revokedTokenRepo, err := c.RevokedTokenRepository()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf(
				"failed to get revoked token repository for auth use case: %w", err)
			return
		}

		c.auth.useCase = authUseCase.NewAuthUseCase(c.config, tokenCodec, revokedTokenRepo)
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.auth.useCase, nil
}

// AuthHandler returns the auth HTTP handler instance.
func (c *Container) AuthHandler() (*authHTTP.Handler, error) {
	c.auth.handlerInit.Do(func() {
		useCase, err := c.AuthUseCase()
		if err != nil {
			c.initErrors["authHandler"] = fmt.Errorf("failed to get auth use case for auth handler: %w", err)
			return
		}

		userUseCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["authHandler"] = fmt.Errorf("failed to get user use case for auth handler: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["authHandler"] = fmt.Errorf("failed to get business metrics for auth handler: %w", err)
			return
		}

		c.auth.handler = authHTTP.NewHandler(c.config, useCase, userUseCase, businessMetrics, c.Logger())
	})
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.handler, nil
}
