package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse body for GET /api/dashboard/summary.
type DashboardSummaryResponse struct {
	ProductCount  int64           `json:"product_count"`
	UnitsOnHand   int64           `json:"units_on_hand"`
	DamagedUnits  int64           `json:"damaged_units"`
	StockValue    decimal.Decimal `json:"stock_value"`
	TodayOutgoing int64           `json:"today_outgoing_qty"`
	TodayIncoming int64           `json:"today_incoming_qty"`
	MonthOutgoing decimal.Decimal `json:"month_outgoing_total"`
	MonthIncoming decimal.Decimal `json:"month_incoming_total"`
	MonthExpense  decimal.Decimal `json:"month_expense"`
	MonthIncome   decimal.Decimal `json:"month_income"`

	TopProducts []TopProductDTO       `json:"top_products"`
	OrderCounts []OrderStatusCountDTO `json:"order_counts"`
}

// TopProductDTO one row of the outgoing ranking.
type TopProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// OrderStatusCountDTO order count per status.
type OrderStatusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
