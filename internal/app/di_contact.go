package app

import (
	"fmt"
	"sync"

	contactHTTP "github.com/allisson/contacts/internal/contact/http"
	contactRepository "github.com/allisson/contacts/internal/contact/repository"
	contactUseCase "github.com/allisson/contacts/internal/contact/usecase"
)

// contactComponents holds the contact module dependencies.
type contactComponents struct {
	repo    contactUseCase.ContactRepository
	useCase contactUseCase.UseCase
	handler *contactHTTP.ContactHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// ContactRepository returns the contact repository instance.
func (c *Container) ContactRepository() (contactUseCase.ContactRepository, error) {
	c.contact.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["contactRepo"] = fmt.Errorf("failed to get database for contact repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.contact.repo = contactRepository.NewMySQLContactRepository(db)
		case "postgres":
			c.contact.repo = contactRepository.NewPostgreSQLContactRepository(db)
		default:
			c.initErrors["contactRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["contactRepo"]; exists {
		return nil, storedErr
	}
	return c.contact.repo, nil
}

// ContactUseCase returns the contact use case instance.
func (c *Container) ContactUseCase() (contactUseCase.UseCase, error) {
	c.contact.useCaseInit.Do(func() {
		repo, err := c.ContactRepository()
		if err != nil {
			c.initErrors["contactUseCase"] = fmt.Errorf(
				"failed to get contact repository for contact use case: %w", err)
			return
		}

		c.contact.useCase = contactUseCase.NewContactUseCase(repo)
	})
	if storedErr, exists := c.initErrors["contactUseCase"]; exists {
		return nil, storedErr
	}
	return c.contact.useCase, nil
}

// ContactHandler returns the contact HTTP handler instance.
func (c *Container) ContactHandler() (*contactHTTP.ContactHandler, error) {
	c.contact.handlerInit.Do(func() {
		useCase, err := c.ContactUseCase()
		if err != nil {
			c.initErrors["contactHandler"] = fmt.Errorf(
				"failed to get contact use case for contact handler: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["contactHandler"] = fmt.Errorf(
				"failed to get business metrics for contact handler: %w", err)
			return
		}

		c.contact.handler = contactHTTP.NewContactHandler(useCase, businessMetrics, c.Logger())
	})
	if storedErr, exists := c.initErrors["contactHandler"]; exists {
		return nil, storedErr
	}
	return c.contact.handler, nil
}
