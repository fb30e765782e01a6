// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / valor total / stock bajo / sin stock   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Stock | Mín | Vence | Valor      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/davidmtzc/inventra-api/internal/application/dto"
	"github.com/davidmtzc/inventra-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, report *dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableProductRows(report.Products) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(report *dto.InventoryReport) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// summaryRow: bloque de totales en cuatro columnas.
func summaryRow(s dto.InventoryReportSummary) core.Row {
	metric := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		metric("Productos activos", fmt.Sprintf("%d", s.TotalProducts), colorPrimary),
		metric("Valor del inventario", "$"+s.InventoryValue.StringFixed(2), colorPrimary),
		metric("Stock bajo", fmt.Sprintf("%d", s.LowStockCount), colorRed),
		metric("Sin stock", fmt.Sprintf("%d", s.OutOfStockCount), colorRed),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Vence", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tableProductRows: una fila por producto; stock en rojo si necesita reposición.
func tableProductRows(products []*dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		stockColor := (*props.Color)(nil)
		if p.NeedsRestock {
			stockColor = colorRed
		}
		expiry := "—"
		if p.ExpiryDate != nil {
			expiry = *p.ExpiryDate
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.CurrentStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: stockColor,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(expiry, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+p.InventoryValue.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}
