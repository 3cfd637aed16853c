package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/backoffice-api/internal/domain"
	"github.com/shopdesk/backoffice-api/internal/domain/repository"
)

// reportPageSize movements fetched per page while building the report.
const reportPageSize = 500

// MovementReportUseCase builds the printable movement report for a date range.
type MovementReportUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	generator   MovementReportPDFGenerator
}

// NewMovementReportUseCase builds the use case.
func NewMovementReportUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	generator MovementReportPDFGenerator,
) *MovementReportUseCase {
	return &MovementReportUseCase{movRepo: movRepo, productRepo: productRepo, generator: generator}
}

// Download collects every movement item in [from, to], resolves product names
// and returns the rendered PDF plus a suggested filename.
func (uc *MovementReportUseCase) Download(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	if to.Before(from) {
		return nil, "", domain.ErrInvalidInput
	}

	names := map[string]struct{ name, code string }{}
	var rows []MovementReportRow

	for offset := 0; ; offset += reportPageSize {
		movements, err := uc.movRepo.List("", &from, &to, reportPageSize, offset)
		if err != nil {
			return nil, "", fmt.Errorf("report: list movements: %w", err)
		}
		for _, mov := range movements {
			// Movement.Total is stored per header; line totals are derived
			// from the movement's average unit value.
			for _, it := range mov.Items {
				pn, ok := names[it.ProductID]
				if !ok {
					product, err := uc.productRepo.GetByID(it.ProductID)
					if err != nil {
						return nil, "", err
					}
					if product != nil {
						pn = struct{ name, code string }{product.Name, product.ProductCode}
					} else {
						pn = struct{ name, code string }{"(deleted product)", ""}
					}
					names[it.ProductID] = pn
				}
				lineTotal := decimal.Zero
				if mov.TotalQuantity > 0 {
					lineTotal = mov.Total.Div(decimal.NewFromInt(mov.TotalQuantity)).
						Mul(decimal.NewFromInt(it.Quantity))
				}
				rows = append(rows, MovementReportRow{
					Date:        mov.CreatedAt,
					Type:        mov.Type,
					ProductName: pn.name,
					ProductCode: pn.code,
					Quantity:    it.Quantity,
					Reason:      it.Reason,
					LineTotal:   lineTotal,
				})
			}
		}
		if len(movements) < reportPageSize {
			break
		}
	}

	pdf, err := uc.generator.GenerateMovementReportPDF(ctx, from, to, rows)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("movements_%s_%s.pdf", from.Format("20060102"), to.Format("20060102"))
	return pdf, filename, nil
}
