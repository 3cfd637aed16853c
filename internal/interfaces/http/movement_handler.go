package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/application/ledger"
	"github.com/shopdesk/backoffice-api/internal/application/usecase"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/pkg/logger"
)

// MovementHandler handles stock movement requests (protected). Mutations go
// through the stock ledger; reads through the query use case. Business
// failures (insufficient stock, unknown movement) come back as
// {success:false, message} so the operator sees what went wrong.
type MovementHandler struct {
	ledger  *ledger.StockLedgerUseCase
	queries *usecase.MovementQueryUseCase
	log     *logger.Logger
}

// NewMovementHandler builds the handler.
func NewMovementHandler(ledgerUC *ledger.StockLedgerUseCase, queries *usecase.MovementQueryUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{ledger: ledgerUC, queries: queries, log: log}
}

func toItemInputs(items []dto.MovementItemRequest) []ledger.ItemInput {
	out := make([]ledger.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, ledger.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity, Reason: it.Reason})
	}
	return out
}

// resultError maps a ledger error to an HTTP status plus an operator message.
func (h *MovementHandler) resultError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ResultResponse{Success: false, Message: insufficient.Error()})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ResultResponse{Success: false, Message: "movement or product not found"})
	}
	h.log.Error().Err(err).Msg("movement operation failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ResultResponse{Success: false, Message: "Internal Server Error"})
}

// CheckSufficiency godoc
// @Summary      Check stock sufficiency for an outgoing batch
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "items"
// @Success      200   {object}  dto.ResultResponse
// @Failure      409   {object}  dto.ResultResponse
// @Router       /api/movements/check [post]
func (h *MovementHandler) CheckSufficiency(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "invalid body"})
	}
	if err := h.ledger.CheckSufficiency(c.Context(), toItemInputs(in.Items)); err != nil {
		return h.resultError(c, err)
	}
	return c.JSON(dto.ResultResponse{Success: true, Message: "stock is sufficient"})
}

// CreateOutgoing godoc
// @Summary      Register an outgoing movement (stock decrement)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "items"
// @Success      201   {object}  dto.ResultResponse
// @Failure      400   {object}  dto.ResultResponse
// @Failure      409   {object}  dto.ResultResponse
// @Router       /api/movements/outgoing [post]
func (h *MovementHandler) CreateOutgoing(c *fiber.Ctx) error {
	employeeID := GetEmployeeID(c)
	if employeeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ResultResponse{Success: false, Message: "invalid token"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "invalid body"})
	}
	if _, err := h.ledger.ApplyOutgoing(c.Context(), employeeID, toItemInputs(in.Items)); err != nil {
		return h.resultError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ResultResponse{Success: true, Message: "outgoing movement registered"})
}

// CreateIncoming godoc
// @Summary      Register an incoming movement (stock increment)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "items (reason: damaged|returned)"
// @Success      201   {object}  dto.ResultResponse
// @Failure      400   {object}  dto.ResultResponse
// @Router       /api/movements/incoming [post]
func (h *MovementHandler) CreateIncoming(c *fiber.Ctx) error {
	employeeID := GetEmployeeID(c)
	if employeeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ResultResponse{Success: false, Message: "invalid token"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "invalid body"})
	}
	if _, err := h.ledger.ApplyIncoming(c.Context(), employeeID, toItemInputs(in.Items)); err != nil {
		return h.resultError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ResultResponse{Success: true, Message: "incoming movement registered"})
}

// CreateIncomingAdmin godoc
// @Summary      Register an admin stock adjustment (no employee attribution)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "items"
// @Success      201   {object}  dto.ResultResponse
// @Failure      400   {object}  dto.ResultResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/movements/incoming-admin [post]
func (h *MovementHandler) CreateIncomingAdmin(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "invalid body"})
	}
	if _, err := h.ledger.ApplyIncomingAdmin(c.Context(), toItemInputs(in.Items)); err != nil {
		return h.resultError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ResultResponse{Success: true, Message: "stock adjustment registered"})
}

// Revise godoc
// @Summary      Revise a movement (undo old items, apply new)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Movement ID"
// @Param        body  body  dto.UpdateMovementRequest  true  "new items"
// @Success      200   {object}  dto.ResultResponse
// @Failure      404   {object}  dto.ResultResponse
// @Failure      409   {object}  dto.ResultResponse
// @Router       /api/movements/outgoing/{id} [put]
func (h *MovementHandler) Revise(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "id is required"})
	}
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "invalid body"})
	}
	if err := h.ledger.ReviseMovement(c.Context(), id, toItemInputs(in.Items)); err != nil {
		return h.resultError(c, err)
	}
	return c.JSON(dto.ResultResponse{Success: true, Message: "movement revised"})
}

// Delete godoc
// @Summary      Delete a movement, reversing its stock effects
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Movement ID"
// @Success      200  {object}  dto.ResultResponse
// @Failure      404  {object}  dto.ResultResponse
// @Failure      409  {object}  dto.ResultResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{Success: false, Message: "id is required"})
	}
	if err := h.ledger.DeleteMovement(c.Context(), id); err != nil {
		return h.resultError(c, err)
	}
	return c.JSON(dto.ResultResponse{Success: true, Message: "movement deleted"})
}

// GetByID godoc
// @Summary      Get a movement by ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Movement ID"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.queries.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movement not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List movements
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Movement type filter"
// @Param        from    query  string  false  "RFC 3339 lower bound"
// @Param        to      query  string  false  "RFC 3339 upper bound"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movementType := c.Query("type")
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be RFC 3339"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be RFC 3339"})
	}
	limit, offset := pageParams(c)
	out, err := h.queries.List(movementType, from, to, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseTimeQuery reads an optional RFC 3339 query parameter.
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// pageParams reads limit/offset with defaults and a cap.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
