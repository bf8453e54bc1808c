package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/movement"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// MovementHandler trata as requisições de movimentação de estoque (protegido).
type MovementHandler struct {
	engine  *movement.ProcessMovementUseCase
	history *movement.HistoryUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(engine *movement.ProcessMovementUseCase, history *movement.HistoryUseCase) *MovementHandler {
	return &MovementHandler{engine: engine, history: history}
}

// Process godoc
// @Summary      Processar lote de movimentação
// @Description  Confirma entrada, saída ou consumo. O lote inteiro confirma
// @Description  ou aborta: nenhuma linha tem efeito se qualquer uma falhar.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessMovementRequest  true  "type, hospital_id, unit_id, general_stock, patient_id, lines"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Process(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ProcessMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	var date time.Time
	if in.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data no formato 2006-01-02"})
		}
	}

	lines := make([]movement.Line, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, movement.Line{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	err := h.engine.Process(c.Context(), userID, movement.Input{
		Type:         in.Type,
		Date:         date,
		HospitalID:   in.HospitalID,
		UnitID:       in.UnitID,
		GeneralStock: in.GeneralStock,
		PatientID:    in.PatientID,
		Notes:        in.Notes,
		Lines:        lines,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimentação confirmada"})
}

// List godoc
// @Summary      Histórico de movimentos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "filtrar por item"
// @Param        hospital_id  query  string  false  "filtrar por hospital"
// @Param        unit_id      query  string  false  "filtrar por unidade"
// @Param        type         query  string  false  "entry | exit | consumption"
// @Param        from         query  string  false  "data inicial (2006-01-02)"
// @Param        to           query  string  false  "data final (2006-01-02)"
// @Param        limit        query  int     false  "máximo de resultados (padrão 50)"
// @Param        offset       query  int     false  "deslocamento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ItemID:     c.Query("item_id"),
		HospitalID: c.Query("hospital_id"),
		UnitID:     c.Query("unit_id"),
		Type:       c.Query("type"),
		Limit:      c.QueryInt("limit"),
		Offset:     c.QueryInt("offset"),
	}
	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		if s := c.Query(q.name); s != "" {
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: q.name + " no formato 2006-01-02"})
			}
			*q.dst = &t
		}
	}
	movements, err := h.history.List(filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(movements)
}
