// Package pdf renders the printable movement report with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shopdesk — Stock movement report │ date range      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Date | Type | Code | Product | Qty | Reason | Value │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: rows / units out / units in                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/shopdesk/backoffice-api/internal/application/reports"
	"github.com/shopdesk/backoffice-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implements reports.MovementReportPDFGenerator.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReportPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateMovementReportPDF(
	_ context.Context,
	from, to time.Time,
	rows []reports.MovementReportRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock movement report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(from, to time.Time) core.Row {
	period := fmt.Sprintf("%s — %s", from.Format("02/01/2006"), to.Format("02/01/2006"))
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Stock movement report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}))
	}
	return row.New(6).Add(
		header("Date", 2),
		header("Type", 2),
		header("Code", 1),
		header("Product", 4),
		header("Qty", 1),
		header("Reason", 1),
		header("Value", 1),
	)
}

func tableRow(r reports.MovementReportRow) core.Row {
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8}))
	}
	return row.New(5).Add(
		cell(r.Date.Format("02/01/2006"), 2),
		cell(r.Type, 2),
		cell(r.ProductCode, 1),
		cell(r.ProductName, 4),
		cell(fmt.Sprintf("%d", r.Quantity), 1),
		cell(r.Reason, 1),
		cell(r.LineTotal.StringFixed(2), 1),
	)
}

func totalsRow(rows []reports.MovementReportRow) core.Row {
	var unitsOut, unitsIn int64
	for _, r := range rows {
		if r.Type == entity.MovementTypeOutgoing {
			unitsOut += r.Quantity
		} else {
			unitsIn += r.Quantity
		}
	}
	summary := fmt.Sprintf("%d lines   |   units out: %d   |   units in: %d",
		len(rows), unitsOut, unitsIn)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(summary, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right}),
		),
	)
}
