package ipo

import (
	"errors"
	"fmt"

	"ipo-tracker/core/logger"
	"ipo-tracker/feature/ipo/models"
	"ipo-tracker/feature/ipo/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response is the envelope of every successful response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every handled failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Handler handles HTTP requests for IPO data.
type Handler struct {
	service  *Service
	logger   *zap.Logger
	throttle fiber.Handler
}

// NewHandler creates a new HTTP handler. throttle guards the sync triggers and may be nil.
func NewHandler(service *Service, logger *zap.Logger, throttle fiber.Handler) *Handler {
	if throttle == nil {
		throttle = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &Handler{service: service, logger: logger, throttle: throttle}
}

// RegisterRoutes registers the IPO routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ipo")
	group.Post("/sync", h.throttle, h.HandleSyncAll)
	group.Get("/sync/status", h.HandleStatus)
	group.Get("/sync/snapshots/:source", h.HandleSnapshots)
	group.Post("/sync/:source", h.throttle, h.HandleSyncSource)
	group.Get("/stocks", h.HandleListStocks)
	group.Get("/stocks/:market/:symbol", h.HandleGetStock)
}

// HandleSyncAll syncs every source.
// @Summary Sync all sources
// @Description Fetch every upstream feed and reconcile it into the store. Per-source failures are reported in the result.
// @Tags ipo
// @Produce json
// @Success 200 {object} Response{data=SyncSummary} "Sync summary"
// @Failure 429 {object} ErrorResponse "Throttled"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /ipo/sync [post]
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summary, err := h.service.SyncAll(c.UserContext())
	if err != nil {
		l.Error("IPO sync failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "sync failed", err)
	}

	return c.JSON(Response{Success: true, Data: summary, Message: "IPO data sync completed"})
}

// HandleSyncSource syncs a single source.
// @Summary Sync one source
// @Description Fetch one upstream feed and reconcile it into the store.
// @Tags ipo
// @Produce json
// @Param source path string true "Source name (e.g. 'finnhub', 'hkex')"
// @Success 200 {object} Response{data=SyncResult} "Sync result"
// @Failure 404 {object} ErrorResponse "Unknown source"
// @Failure 429 {object} ErrorResponse "Throttled"
// @Router /ipo/sync/{source} [post]
func (h *Handler) HandleSyncSource(c *fiber.Ctx) error {
	source := c.Params("source")
	l := logger.WithRayID(h.logger, c)

	res, err := h.service.SyncSource(c.UserContext(), source)
	if err != nil {
		if errors.Is(err, models.ErrUnknownSource) {
			return fail(c, fiber.StatusNotFound, "unknown source", err)
		}
		l.Error("IPO source sync failed", zap.String("source", source), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "sync failed", err)
	}

	return c.JSON(Response{Success: true, Data: res, Message: fmt.Sprintf("%s sync completed", source)})
}

// HandleStatus returns the sync status.
// @Summary Sync status
// @Description Stock counts and last update per market, and the last run of each source.
// @Tags ipo
// @Produce json
// @Success 200 {object} Response{data=StatusReport} "Status"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /ipo/sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report, err := h.service.Status(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to build sync status", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "failed to load sync status", err)
	}
	return c.JSON(Response{Success: true, Data: report, Message: "sync status"})
}

// HandleSnapshots lists the archived payloads of a source.
// @Summary List raw snapshots
// @Tags ipo
// @Produce json
// @Param source path string true "Source name"
// @Param limit query int false "Maximum snapshots" default(20)
// @Success 200 {object} Response{data=SnapshotList} "Snapshots"
// @Failure 404 {object} ErrorResponse "Unknown source"
// @Failure 503 {object} ErrorResponse "Archive disabled"
// @Router /ipo/sync/snapshots/{source} [get]
func (h *Handler) HandleSnapshots(c *fiber.Ctx) error {
	source := c.Params("source")

	list, err := h.service.Snapshots(c.UserContext(), source, c.QueryInt("limit", 20))
	if err != nil {
		if errors.Is(err, models.ErrUnknownSource) {
			return fail(c, fiber.StatusNotFound, "unknown source", err)
		}
		logger.WithRayID(h.logger, c).Error("Failed to list snapshots", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "failed to list snapshots", err)
	}
	if list == nil {
		return fail(c, fiber.StatusServiceUnavailable, "snapshot archive disabled", errors.New("storage is not enabled"))
	}
	return c.JSON(Response{Success: true, Data: list, Message: "snapshots"})
}

// HandleListStocks lists stored stocks.
// @Summary List stocks
// @Tags ipo
// @Produce json
// @Param market query string false "Market (US, HK)"
// @Param status query string false "Status (UPCOMING, PRICING, LISTED, WITHDRAWN, POSTPONED)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} Response{data=StockPage} "Stocks"
// @Failure 400 {object} ErrorResponse "Bad filter"
// @Router /ipo/stocks [get]
func (h *Handler) HandleListStocks(c *fiber.Ctx) error {
	var f store.ListFilter

	if raw := c.Query("market"); raw != "" {
		m, ok := models.ParseMarket(raw)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "invalid market", fmt.Errorf("%q: %w", raw, models.ErrInvalidMarket))
		}
		f.Market = m
	}
	if raw := c.Query("status"); raw != "" {
		st := models.Status(raw)
		if !st.IsValid() {
			return fail(c, fiber.StatusBadRequest, "invalid status", fmt.Errorf("unknown status %q", raw))
		}
		f.Status = st
	}

	f.Limit = c.QueryInt("limit", 50)
	f.Offset = c.QueryInt("offset", 0)
	if f.Limit <= 0 || f.Limit > 500 || f.Offset < 0 {
		return fail(c, fiber.StatusBadRequest, "invalid pagination", errors.New("limit must be 1-500 and offset non-negative"))
	}

	page, err := h.service.ListStocks(c.UserContext(), f)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list stocks", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "failed to list stocks", err)
	}
	return c.JSON(Response{Success: true, Data: page, Message: "stocks"})
}

// HandleGetStock returns one stored stock.
// @Summary Get stock
// @Tags ipo
// @Produce json
// @Param market path string true "Market (US, HK)"
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} Response{data=models.Stock} "Stock"
// @Failure 400 {object} ErrorResponse "Invalid market"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /ipo/stocks/{market}/{symbol} [get]
func (h *Handler) HandleGetStock(c *fiber.Ctx) error {
	m, ok := models.ParseMarket(c.Params("market"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid market", models.ErrInvalidMarket)
	}

	stock, err := h.service.GetStock(c.UserContext(), m, c.Params("symbol"))
	if err != nil {
		if errors.Is(err, models.ErrStockNotFound) {
			return fail(c, fiber.StatusNotFound, "stock not found", err)
		}
		logger.WithRayID(h.logger, c).Error("Failed to load stock", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "failed to load stock", err)
	}
	return c.JSON(Response{Success: true, Data: stock, Message: "stock"})
}

func fail(c *fiber.Ctx, status int, msg string, err error) error {
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: msg, Details: err.Error()})
}
