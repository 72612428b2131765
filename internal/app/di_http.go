package app

import (
	"fmt"
	"sync"

	"github.com/allisson/contacts/internal/http"
)

// serverComponents holds the HTTP and metrics servers.
type serverComponents struct {
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	httpServerInit    sync.Once
	metricsServerInit sync.Once
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.servers.httpServerInit.Do(func() {
		authUseCase, err := c.AuthUseCase()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get auth use case for http server: %w", err)
			return
		}

		authHandler, err := c.AuthHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get auth handler for http server: %w", err)
			return
		}

		userHandler, err := c.UserHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get user handler for http server: %w", err)
			return
		}

		contactHandler, err := c.ContactHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get contact handler for http server: %w", err)
			return
		}

		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get metrics provider for http server: %w", err)
			return
		}

		c.servers.httpServer = http.NewServer(
			c.config,
			authUseCase,
			authHandler,
			userHandler,
			contactHandler,
			metricsProvider,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.servers.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.servers.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
			return
		}
		if provider == nil {
			return
		}

		c.servers.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.servers.metricsServer, nil
}
