package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/report"
)

// ReportHandler trata as requisições de relatórios (protegido).
type ReportHandler struct {
	stock       *report.StockReportUseCase
	consumption *report.ConsumptionUseCase
	alerts      *report.AlertsUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(
	stock *report.StockReportUseCase,
	consumption *report.ConsumptionUseCase,
	alerts *report.AlertsUseCase,
) *ReportHandler {
	return &ReportHandler{stock: stock, consumption: consumption, alerts: alerts}
}

// StockPosition godoc
// @Summary      Posição de estoque
// @Description  Sem hospital_id devolve a posição do almoxarifado central.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        hospital_id  query  string  false  "posição de um hospital/UBS"
// @Param        format       query  string  false  "pdf para baixar o relatório em PDF"
// @Success      200  {object}  dto.StockPositionReport
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-position [get]
func (h *ReportHandler) StockPosition(c *fiber.Ctx) error {
	hospitalID := c.Query("hospital_id")

	if c.Query("format") == "pdf" {
		var (
			pdfBytes []byte
			err      error
		)
		if hospitalID != "" {
			pdfBytes, err = h.stock.HospitalPositionPDF(c.Context(), hospitalID)
		} else {
			pdfBytes, err = h.stock.CentralPositionPDF(c.Context())
		}
		if err != nil {
			return respondDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="posicao-estoque.pdf"`)
		return c.Send(pdfBytes)
	}

	var (
		position *dto.StockPositionReport
		err      error
	)
	if hospitalID != "" {
		position, err = h.stock.HospitalPosition(hospitalID)
	} else {
		position, err = h.stock.CentralPosition()
	}
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(position)
}

// Consumption godoc
// @Summary      Consumo por período
// @Description  Consumo agregado por item, com média diária e cobertura do
// @Description  estoque atual do escopo (central quando sem hospital).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  true   "data inicial (2006-01-02)"
// @Param        to           query  string  true   "data final (2006-01-02)"
// @Param        hospital_id  query  string  false  "restringir a um hospital"
// @Param        unit_id      query  string  false  "restringir a uma unidade"
// @Success      200  {array}   dto.ConsumptionRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/consumption [get]
func (h *ReportHandler) Consumption(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from no formato 2006-01-02"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to no formato 2006-01-02"})
	}
	// Fim do dia: o filtro inclui movimentos da própria data final.
	to = to.Add(24*time.Hour - time.Nanosecond)

	rows, err := h.consumption.Report(c.Query("hospital_id"), c.Query("unit_id"), from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(rows)
}

// MinimumAlerts godoc
// @Summary      Alertas de limite mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MinimumAlertRow
// @Router       /api/reports/minimum-alerts [get]
func (h *ReportHandler) MinimumAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.MinimumAlerts()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(alerts),
		"alerts": alerts,
	})
}
