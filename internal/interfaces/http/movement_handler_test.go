package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/application/ledger"
	"github.com/shopdesk/backoffice-api/internal/application/usecase"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
	apphttp "github.com/shopdesk/backoffice-api/internal/interfaces/http"
	"github.com/shopdesk/backoffice-api/pkg/logger"
)

// stubProductRepo a single-product store, just enough for the handler paths.
type stubProductRepo struct {
	product *entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		cp := *r.product
		return &cp, nil
	}
	return nil, nil
}
func (r *stubProductRepo) GetByCode(code string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) Update(p *entity.Product) error                      { return nil }
func (r *stubProductRepo) Delete(id string) error                              { return nil }
func (r *stubProductRepo) List(limit, offset int) ([]*entity.Product, error)   { return nil, nil }
func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error)     { return r.GetByID(id) }
func (r *stubProductRepo) UpdateStock(id string, stock, damageStock int64) error {
	r.product.Stock = stock
	r.product.DamageStock = damageStock
	return nil
}

// stubMovementRepo records the last created movement.
type stubMovementRepo struct {
	created *entity.Movement
}

func (r *stubMovementRepo) Create(m *entity.Movement) error { r.created = m; return nil }
func (r *stubMovementRepo) GetByID(id string) (*entity.Movement, error) {
	if r.created != nil && r.created.ID == id {
		return r.created, nil
	}
	return nil, nil
}
func (r *stubMovementRepo) UpdateHeader(m *entity.Movement) error { return nil }
func (r *stubMovementRepo) ReplaceItems(movementID string, items []entity.MovementItem) error {
	return nil
}
func (r *stubMovementRepo) Delete(id string) error { r.created = nil; return nil }
func (r *stubMovementRepo) List(movementType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	if r.created == nil {
		return nil, nil
	}
	return []*entity.Movement{r.created}, nil
}

// stubTxRunner runs the callback against the stub repos with no rollback; the
// transactional behavior itself is covered by the ledger package tests.
type stubTxRunner struct {
	movRepo     *stubMovementRepo
	productRepo *stubProductRepo
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	return fn(r.movRepo, r.productRepo)
}

func newMovementTestApp(stock int64) (*fiber.App, *stubProductRepo, *stubMovementRepo) {
	productRepo := &stubProductRepo{product: &entity.Product{
		ID:    "p1",
		Name:  "Soap",
		Price: decimal.RequireFromString("2.00"),
		Stock: stock,
	}}
	movRepo := &stubMovementRepo{}
	runner := &stubTxRunner{movRepo: movRepo, productRepo: productRepo}

	ledgerUC := ledger.NewStockLedgerUseCase(runner, productRepo)
	queryUC := usecase.NewMovementQueryUseCase(movRepo)
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := fiber.New()
	handler := apphttp.NewMovementHandler(ledgerUC, queryUC, log)
	app.Post("/api/movements/outgoing", apphttp.AuthMiddleware(testJWTSecret), handler.CreateOutgoing)
	app.Post("/api/movements/check", apphttp.AuthMiddleware(testJWTSecret), handler.CheckSufficiency)
	return app, productRepo, movRepo
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleSR))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResult(t *testing.T, resp *http.Response) dto.ResultResponse {
	t.Helper()
	var out dto.ResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateOutgoingSuccess(t *testing.T) {
	app, productRepo, movRepo := newMovementTestApp(10)

	resp := postJSON(t, app, "/api/movements/outgoing",
		`{"items":[{"product_id":"p1","quantity":4}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeResult(t, resp)
	assert.True(t, out.Success)

	assert.Equal(t, int64(6), productRepo.product.Stock)
	require.NotNil(t, movRepo.created)
	assert.Equal(t, entity.MovementTypeOutgoing, movRepo.created.Type)
	assert.Equal(t, testEmployeeID, movRepo.created.EmployeeID)
}

func TestCreateOutgoingInsufficientStock(t *testing.T) {
	app, productRepo, movRepo := newMovementTestApp(3)

	resp := postJSON(t, app, "/api/movements/outgoing",
		`{"items":[{"product_id":"p1","quantity":5}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	out := decodeResult(t, resp)
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "Soap", "message names the short product")
	assert.Contains(t, out.Message, "available 3")

	assert.Equal(t, int64(3), productRepo.product.Stock)
	assert.Nil(t, movRepo.created)
}

func TestCreateOutgoingInvalidBatch(t *testing.T) {
	app, _, _ := newMovementTestApp(10)

	resp := postJSON(t, app, "/api/movements/outgoing", `{"items":[]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, decodeResult(t, resp).Success)
}

func TestCheckSufficiencyVerdicts(t *testing.T) {
	app, _, _ := newMovementTestApp(5)

	ok := postJSON(t, app, "/api/movements/check",
		`{"items":[{"product_id":"p1","quantity":5}]}`)
	defer ok.Body.Close()
	assert.Equal(t, http.StatusOK, ok.StatusCode)
	assert.True(t, decodeResult(t, ok).Success)

	short := postJSON(t, app, "/api/movements/check",
		`{"items":[{"product_id":"p1","quantity":6}]}`)
	defer short.Body.Close()
	assert.Equal(t, http.StatusConflict, short.StatusCode)
	assert.False(t, decodeResult(t, short).Success)

	missing := postJSON(t, app, "/api/movements/check",
		`{"items":[{"product_id":"ghost","quantity":1}]}`)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
