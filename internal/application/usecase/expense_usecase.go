package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// ExpenseUseCase CRUD for cashbook entries (expenses and income).
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func validKind(kind string) bool {
	return kind == entity.EntryKindExpense || kind == entity.EntryKindIncome
}

// Create records a cashbook entry.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !validKind(in.Kind) || in.Title == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Title:     in.Title,
		Note:      in.Note,
		Amount:    in.Amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID fetches an entry.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// Update edits an entry; the kind is immutable.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Title = *in.Title
	}
	if in.Note != nil {
		expense.Note = *in.Note
	}
	if in.Amount != nil {
		if !in.Amount.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete removes an entry.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lists entries, optionally filtered by kind and date range.
func (uc *ExpenseUseCase) List(kind string, from, to *time.Time, limit, offset int) (*dto.ExpenseListResponse, error) {
	if kind != "" && !validKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(kind, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Expenses: out,
		Page:     dto.PageResponse{Limit: limit, Offset: offset, Total: len(out)},
	}, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		Kind:      e.Kind,
		Title:     e.Title,
		Note:      e.Note,
		Amount:    e.Amount,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}
