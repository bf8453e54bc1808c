// Package pdf implementa a renderização do relatório de posição de estoque.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do hospital/central  │  Data de geração        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Item | Local | Qtd | Mín | Estratégico | Situação   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: contagem de locais abaixo do mínimo                 │
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

	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/report"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.StockReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.StockReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockPositionPDF gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateStockPositionPDF(
	_ context.Context,
	position *dto.StockPositionReport,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Posição de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(position, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(position.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(position.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do hospital (esq) e data de geração (dir).
func headerRow(position *dto.StockPositionReport, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("POSIÇÃO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(position.HospitalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 5,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de posições.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 4, align.Left),
		h("Local", 3, align.Left),
		h("Qtd", 1, align.Right),
		h("Mín", 1, align.Right),
		h("Estrat.", 1, align.Right),
		h("Situação", 2, align.Center),
	)
}

// tableRows: uma linha por item/local, com situação destacada.
func tableRows(rows []dto.StockPositionRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		situation, color := situationLabel(r)
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(r.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.LocationName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.MinQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.StrategicQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(situation, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: color, Style: fontstyle.Bold,
			})),
		))
	}
	return result
}

func situationLabel(r dto.StockPositionRow) (string, *props.Color) {
	switch {
	case r.BelowMinimum:
		return "ABAIXO DO MÍNIMO", colorAlert
	case r.BelowStrategic:
		return "Estratégico", colorGray
	default:
		return "OK", colorPrimary
	}
}

// footerRow: contagem de locais em alerta.
func footerRow(rows []dto.StockPositionRow) core.Row {
	below := 0
	for _, r := range rows {
		if r.BelowMinimum {
			below++
		}
	}
	label := fmt.Sprintf("%d itens listados, %d abaixo do limite mínimo", len(rows), below)
	return row.New(8).Add(
		col.New(12).Add(text.New(label, props.Text{Size: 8, Top: 2, Color: colorGray})),
	)
}
