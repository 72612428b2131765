package app

import (
	"fmt"
	"sync"

	userHTTP "github.com/allisson/contacts/internal/user/http"
	userRepository "github.com/allisson/contacts/internal/user/repository"
	userUseCase "github.com/allisson/contacts/internal/user/usecase"
)

// userComponents holds the user module dependencies.
type userComponents struct {
	repo    userUseCase.UserRepository
	useCase userUseCase.UseCase
	handler *userHTTP.UserHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	c.user.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.user.repo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.user.repo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.user.repo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	c.user.useCaseInit.Do(func() {
		repo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		useCase, err := userUseCase.NewUserUseCase(repo)
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to create user use case: %w", err)
			return
		}
		c.user.useCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.user.useCase, nil
}

// UserHandler returns the user HTTP handler instance.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	c.user.handlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = fmt.Errorf("failed to get user use case for user handler: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["userHandler"] = fmt.Errorf("failed to get business metrics for user handler: %w", err)
			return
		}

		c.user.handler = userHTTP.NewUserHandler(useCase, businessMetrics, c.Logger())
	})
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.user.handler, nil
}
