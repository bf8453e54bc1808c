package http

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/movement"
)

// ImportHandler trata a importação de movimentos via arquivo CSV (protegido).
type ImportHandler struct {
	uc *movement.ImportUseCase
}

// NewImportHandler constrói o handler.
func NewImportHandler(uc *movement.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Colunas reconhecidas no cabeçalho do CSV (sem acentos, sem caixa).
var csvColumns = map[string]string{
	"codigo":        "item_code",
	"codigo_item":   "item_code",
	"item_code":     "item_code",
	"tipo":          "type",
	"type":          "type",
	"quantidade":    "quantity",
	"quantity":      "quantity",
	"data":          "date",
	"date":          "date",
	"hospital":      "hospital",
	"unidade":       "unit",
	"unit":          "unit",
	"estoque_geral": "general_stock",
	"general_stock": "general_stock",
	"observacao":    "notes",
	"observacoes":   "notes",
	"notes":         "notes",
}

// Import godoc
// @Summary      Importar movimentos de arquivo CSV
// @Description  Cada linha vira um lote próprio: falha em uma linha não
// @Description  impede as demais. Devolve relatório linha a linha.
// @Tags         movements
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV com cabeçalho: codigo,tipo,quantidade,data,hospital,unidade,estoque_geral,observacao"
// @Success      200   {object}  movement.ImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file (multipart) obrigatório"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível abrir o arquivo"})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "CSV malformado: " + err.Error()})
	}
	if len(records) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_FILE", Message: "arquivo sem linhas de dados"})
	}

	index := map[string]int{}
	for i, name := range records[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := csvColumns[key]; ok {
			index[canonical] = i
		}
	}
	if _, ok := index["item_code"]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_HEADER", Message: "cabeçalho sem coluna de código do item"})
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]movement.ImportRow, 0, len(records)-1)
	for n, record := range records[1:] {
		quantity, _ := strconv.ParseInt(field(record, "quantity"), 10, 64)
		general := field(record, "general_stock")
		rows = append(rows, movement.ImportRow{
			Line:         n + 2, // linha no arquivo, contando o cabeçalho
			ItemCode:     field(record, "item_code"),
			Type:         field(record, "type"),
			Quantity:     quantity,
			Date:         field(record, "date"),
			HospitalName: field(record, "hospital"),
			UnitName:     field(record, "unit"),
			GeneralStock: general == "1" || strings.EqualFold(general, "sim") || strings.EqualFold(general, "true"),
			Notes:        field(record, "notes"),
		})
	}

	report := h.uc.Import(c.Context(), userID, rows)
	return c.JSON(report)
}
