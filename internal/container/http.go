package container

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/slinkhq/slink/internal/entry"
	"github.com/slinkhq/slink/internal/handlers"
	"github.com/slinkhq/slink/internal/lookup"
	"github.com/slinkhq/slink/internal/middleware"
	"go.uber.org/zap"
)

// HTTPPackage provides the router and the huma API with all routes
// registered. Invoking the API is what triggers route registration.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		router := chi.NewMux()
		router.Use(middleware.RequestMeta)
		router.Use(middleware.AccessLog(logger))

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		handlers.UseErrorModel()

		api := humachi.New(router, huma.DefaultConfig("slink", "1.0.0"))

		apiHandler := handlers.NewAPIHandler(
			do.MustInvoke[*entry.Repository](i),
			baseURL(opts),
			logger,
		)
		health := handlers.NewHealthHandler(
			handlers.NewRedisHealthChecker(do.MustInvoke[*redis.Client](i)),
		)
		handlers.RegisterRoutes(api, apiHandler, health)

		// Browser-facing routes go on the router directly; the slug route
		// must come after the API paths so they keep precedence.
		resolver := handlers.NewResolver(do.MustInvoke[*lookup.Dispatcher](i), logger)
		resolver.MountRoutes(router)

		return api, nil
	})
}

func baseURL(opts *Options) string {
	if opts.BaseURL != "" {
		return strings.TrimSuffix(opts.BaseURL, "/")
	}

	return fmt.Sprintf("http://localhost:%d", opts.Port)
}
