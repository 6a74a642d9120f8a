package rest

import (
	"errors"

	"github.com/cristianortiz/auctionDashboard/internal/dashboard/application"
	"github.com/cristianortiz/auctionDashboard/internal/dashboard/domain"
	"github.com/cristianortiz/auctionDashboard/internal/shared/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// ViewerHeader carries the user ID set by the authentication layer in front of this service
const ViewerHeader = "X-User-ID"

const viewerKey = "viewer"

// DashboardHandler exposes the dashboard application service over HTTP
type DashboardHandler struct {
	service         application.DashboardService
	defaultPageSize int
	maxPageSize     int
}

// NewDashboardHandler creates a new instance of DashboardHandler
func NewDashboardHandler(service application.DashboardService, defaultPageSize, maxPageSize int) *DashboardHandler {
	return &DashboardHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes mounts the dashboard endpoints on router
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	api := router.Group("/api/v1")

	me := api.Group("/me", h.requireViewer)
	me.Get("/bids", h.getBidHistory)
	me.Get("/won-auctions", h.getWonAuctions)
	me.Get("/transactions", h.getTransactions)

	api.Get("/auctions/:auctionID/standing", h.requireViewer, h.getAuctionStanding)
	api.Patch("/settlements/:auctionID", h.requireViewer, h.advanceSettlement)
}

// requireViewer builds the explicit Viewer passed down to the use cases
func (h *DashboardHandler) requireViewer(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Get(ViewerHeader))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing or invalid " + ViewerHeader + " header"})
	}
	c.Locals(viewerKey, domain.Viewer{UserID: userID})
	return c.Next()
}

func viewerFrom(c *fiber.Ctx) domain.Viewer {
	v, _ := c.Locals(viewerKey).(domain.Viewer)
	return v
}

func (h *DashboardHandler) getBidHistory(c *fiber.Ctx) error {
	q, err := h.parsePageQuery(c)
	if err != nil {
		return h.writeError(c, err)
	}
	dto, err := h.service.GetBidHistory(c.UserContext(), viewerFrom(c), q)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto)
}

func (h *DashboardHandler) getWonAuctions(c *fiber.Ctx) error {
	q, err := h.parsePageQuery(c)
	if err != nil {
		return h.writeError(c, err)
	}
	dto, err := h.service.GetWonAuctions(c.UserContext(), viewerFrom(c), q)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto)
}

func (h *DashboardHandler) getTransactions(c *fiber.Ctx) error {
	q, err := h.parsePageQuery(c)
	if err != nil {
		return h.writeError(c, err)
	}
	dto, err := h.service.GetTransactions(c.UserContext(), viewerFrom(c), q)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto)
}

func (h *DashboardHandler) getAuctionStanding(c *fiber.Ctx) error {
	auctionID, err := uuid.Parse(c.Params("auctionID"))
	if err != nil {
		return h.writeError(c, domain.NewValidationError("auction id", err))
	}
	dto, err := h.service.GetAuctionStanding(c.UserContext(), viewerFrom(c), auctionID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto)
}

func (h *DashboardHandler) advanceSettlement(c *fiber.Ctx) error {
	auctionID, err := uuid.Parse(c.Params("auctionID"))
	if err != nil {
		return h.writeError(c, domain.NewValidationError("auction id", err))
	}
	var req AdvanceSettlementRequest
	if err := c.BodyParser(&req); err != nil {
		return h.writeError(c, domain.NewValidationError("request body", err))
	}
	settlement, err := h.service.AdvanceSettlement(c.UserContext(), application.AdvanceSettlementDTO{
		AuctionID:      auctionID,
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(newSettlementResponse(settlement))
}

// writeError maps the error kinds onto status codes. Unexpected errors are logged and
// reported with a generic message.
func (h *DashboardHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidationError(err):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSettlementNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: domain.ErrSettlementNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	}
	log.Error("Dashboard request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal server error"})
}
