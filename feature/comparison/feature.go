package comparison

import (
	"time"

	"csv-comparison/core/compare"
	"csv-comparison/core/server"
	"csv-comparison/feature/definition"
	"csv-comparison/feature/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the comparison feature.
func NewFeature(opener compare.Opener, store *history.Store, definitions *definition.Cache, logger *zap.Logger, cfg server.Config, timeout time.Duration) *Feature {
	svc := NewService(opener, store, definitions, logger, timeout)
	return &Feature{service: svc, handler: NewHandler(svc, cfg)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "comparison"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
