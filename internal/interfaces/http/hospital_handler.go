package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/catalog"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
)

// HospitalHandler trata as requisições de hospitais, UBS e unidades (protegido).
type HospitalHandler struct {
	uc *catalog.HospitalUseCase
}

// NewHospitalHandler constrói o handler.
func NewHospitalHandler(uc *catalog.HospitalUseCase) *HospitalHandler {
	return &HospitalHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar hospital ou UBS
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHospitalRequest  true  "name, address"
// @Success      201   {object}  dto.HospitalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/hospitals [post]
func (h *HospitalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	hospital, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(hospital)
}

// Update godoc
// @Summary      Atualizar hospital
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do hospital"
// @Param        body  body  dto.CreateHospitalRequest  true  "name, address"
// @Success      200   {object}  dto.HospitalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id} [put]
func (h *HospitalHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	hospital, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(hospital)
}

// GetByID godoc
// @Summary      Buscar hospital
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do hospital"
// @Success      200  {object}  dto.HospitalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id} [get]
func (h *HospitalHandler) GetByID(c *fiber.Ctx) error {
	hospital, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(hospital)
}

// List godoc
// @Summary      Listar hospitais e UBS
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HospitalResponse
// @Router       /api/hospitals [get]
func (h *HospitalHandler) List(c *fiber.Ctx) error {
	hospitals, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(hospitals)
}

// CreateUnit godoc
// @Summary      Cadastrar unidade atendida
// @Tags         hospitals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do hospital"
// @Param        body  body  dto.CreateServedUnitRequest  true  "name, location"
// @Success      201   {object}  dto.ServedUnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id}/units [post]
func (h *HospitalHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateServedUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	unit, err := h.uc.CreateUnit(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// ListUnits godoc
// @Summary      Listar unidades de um hospital
// @Tags         hospitals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do hospital"
// @Success      200  {array}   dto.ServedUnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitals/{id}/units [get]
func (h *HospitalHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.uc.ListUnits(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(units)
}
