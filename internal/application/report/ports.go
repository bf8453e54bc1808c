package report

import (
	"context"
	"time"

	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
)

// StockReportPDFGenerator define o porto de saída para renderização do
// relatório de posição de estoque. Qualquer adaptador (Maroto, mock) deve
// implementar esta interface; a aplicação só conhece o contrato.
type StockReportPDFGenerator interface {
	GenerateStockPositionPDF(ctx context.Context, report *dto.StockPositionReport, generatedAt time.Time) ([]byte, error)
}
