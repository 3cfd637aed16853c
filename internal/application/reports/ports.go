package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementReportRow one printed line of the movement report (one movement item,
// denormalized with its product name).
type MovementReportRow struct {
	Date        time.Time
	Type        string
	ProductName string
	ProductCode string
	Quantity    int64
	Reason      string
	LineTotal   decimal.Decimal
}

// MovementReportPDFGenerator renders the report rows into a PDF document.
type MovementReportPDFGenerator interface {
	GenerateMovementReportPDF(ctx context.Context, from, to time.Time, rows []MovementReportRow) ([]byte, error)
}
