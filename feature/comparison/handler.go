package comparison

import (
	"context"
	"errors"
	"strconv"

	"csv-comparison/core/compare"
	"csv-comparison/core/logger"
	"csv-comparison/core/server"
	"csv-comparison/feature/definition"
	"csv-comparison/feature/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request is the body of POST /comparisons.
type Request struct {
	// Reference is the reference source, a local path or s3://bucket/object.
	Reference string `json:"reference"`
	// Candidate is the candidate source, a local path or s3://bucket/object.
	Candidate string `json:"candidate"`
	// Definition describes how the files are compared.
	Definition compare.Definition `json:"definition"`
	// DefinitionKey selects a definition from the configured catalog instead of Definition.
	DefinitionKey string `json:"definition_key,omitempty"`
}

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg server.Config) *Handler {
	return &Handler{service: service, server: cfg}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/comparisons")
	group.Post("/", h.HandleCompare)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleCompare runs a comparison.
// @Summary Compare Files
// @Description Reconciles the candidate file against the reference file and returns every break found. Sources may be local paths or s3://bucket/object URIs. The definition is taken from the body or, when definition_key is set, from the configured catalog.
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body Request true "Sources and definition"
// @Success 200 {object} Outcome "Comparison Outcome"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Source Not Allowed"
// @Failure 422 {object} map[string]string "Invalid Configuration"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /comparisons [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Reference == "" || req.Candidate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reference and candidate are required"})
	}
	for _, source := range []string{req.Reference, req.Candidate} {
		if !h.server.AllowsSource(source) {
			l.Warn("Rejected comparison source", zap.String("source", source))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "source not allowed: " + source})
		}
	}

	def := req.Definition
	if req.DefinitionKey != "" {
		var err error
		if def, err = h.service.Definition(req.DefinitionKey); err != nil {
			l.Warn("Definition lookup failed", zap.String("key", req.DefinitionKey), zap.Error(err))
			return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
		}
	}

	l = logger.WithSources(l, req.Reference, req.Candidate)
	l.Info("Starting comparison")

	outcome, err := h.service.Run(c.UserContext(), def, req.Reference, req.Candidate)
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Comparison failed", zap.Error(err))
		} else {
			l.Warn("Comparison rejected", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(outcome)
}

// HandleList lists recorded comparisons.
// @Summary List Comparisons
// @Description Lists recorded comparison runs, newest first, without their breaks.
// @Tags comparisons
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Param offset query int false "Number of runs to skip"
// @Success 200 {array} history.Run "Recorded Runs"
// @Failure 503 {object} map[string]string "History Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /comparisons [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	runs, err := h.service.List(c.UserContext(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return h.historyError(c, err)
	}
	if runs == nil {
		runs = []history.Run{}
	}
	return c.JSON(runs)
}

// HandleGet returns one recorded comparison.
// @Summary Get Comparison
// @Description Returns a recorded comparison run with all of its breaks.
// @Tags comparisons
// @Produce json
// @Param id path int true "Run ID"
// @Success 200 {object} history.Run "Recorded Run"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "History Disabled"
// @Router /comparisons/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	run, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return h.historyError(c, err)
	}
	return c.JSON(run)
}

func (h *Handler) historyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrHistoryDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, history.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("History lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoCatalog),
		errors.Is(err, definition.ErrNoMatch):
		return fiber.StatusBadRequest
	case errors.Is(err, compare.ErrInvalidDefinition),
		errors.Is(err, compare.ErrNoKeyColumns),
		errors.Is(err, compare.ErrDuplicateKey):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}
