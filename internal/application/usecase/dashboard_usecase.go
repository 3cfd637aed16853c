package usecase

import (
	"time"

	"github.com/shopdesk/backoffice-api/internal/application/dto"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// DashboardUseCase aggregates the admin dashboard numbers: stock totals,
// today's and this month's movement volumes, cashbook sums, top outgoing
// products and order counts per status.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	expenseRepo   repository.ExpenseRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, expenseRepo repository.ExpenseRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, expenseRepo: expenseRepo}
}

// Summary computes the dashboard snapshot at now.
func (uc *DashboardUseCase) Summary(now time.Time) (*dto.DashboardSummaryResponse, error) {
	stock, err := uc.analyticsRepo.StockSummary()
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.analyticsRepo.MovementSummary(dayStart, now)
	if err != nil {
		return nil, err
	}
	month, err := uc.analyticsRepo.MovementSummary(monthStart, now)
	if err != nil {
		return nil, err
	}

	monthExpense, err := uc.expenseRepo.SumByKind(entity.EntryKindExpense, &monthStart, &now)
	if err != nil {
		return nil, err
	}
	monthIncome, err := uc.expenseRepo.SumByKind(entity.EntryKindIncome, &monthStart, &now)
	if err != nil {
		return nil, err
	}

	top, err := uc.analyticsRepo.TopOutgoingProducts(monthStart, now, 5)
	if err != nil {
		return nil, err
	}
	orderCounts, err := uc.analyticsRepo.OrdersByStatus()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryResponse{
		ProductCount:  stock.ProductCount,
		UnitsOnHand:   stock.UnitsOnHand,
		DamagedUnits:  stock.DamagedUnits,
		StockValue:    stock.StockValue,
		TodayOutgoing: today.OutgoingQuantity,
		TodayIncoming: today.IncomingQuantity,
		MonthOutgoing: month.OutgoingTotal,
		MonthIncoming: month.IncomingTotal,
		MonthExpense:  monthExpense,
		MonthIncome:   monthIncome,
	}
	for _, p := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
		})
	}
	for _, c := range orderCounts {
		out.OrderCounts = append(out.OrderCounts, dto.OrderStatusCountDTO{Status: c.Status, Count: c.Count})
	}
	return out, nil
}
