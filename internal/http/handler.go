package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/docx"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/http/middleware"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	registry  *service.RegistryService
	contracts *service.ContractService
	log       zerolog.Logger
}

func NewHandler(registry *service.RegistryService, contracts *service.ContractService, log zerolog.Logger) *Handler {
	return &Handler{registry: registry, contracts: contracts, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/ppe", h.listFacilities)
	protected.GET("/ppe/:number", h.facilityCard)
	protected.GET("/ppe/:number/plan", h.facilityPlan)
	protected.GET("/ppe/:number/equipment/export", h.exportInventory)
	protected.GET("/ppe/:number/passport", h.facilityPassport)
	protected.POST("/ppe/:number/contracts", h.saveContract)
	protected.POST("/contracts/generate", h.generateContract)
}

func (h *Handler) listFacilities(c *gin.Context) {
	facilities, err := h.registry.ListFacilities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": facilities})
}

func (h *Handler) facilityCard(c *gin.Context) {
	number, err := parsePpeNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ppe number"})
		return
	}
	card, err := h.registry.FacilityCard(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) facilityPlan(c *gin.Context) {
	number, err := parsePpeNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ppe number"})
		return
	}
	path, err := h.registry.PlanPath(number)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

func (h *Handler) exportInventory(c *gin.Context) {
	number, err := parsePpeNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ppe number"})
		return
	}
	result, err := h.registry.ExportInventory(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) facilityPassport(c *gin.Context) {
	number, err := parsePpeNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ppe number"})
		return
	}
	result, err := h.registry.Passport(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

type saveContractRequest struct {
	Number string `json:"number" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Name   string `json:"name"`
}

func (h *Handler) saveContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	number, err := parsePpeNumber(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ppe number"})
		return
	}
	var req saveContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contractID, err := h.contracts.SaveContract(c.Request.Context(), number, req.Number, req.Date, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().Str("principal", principal).Int("ppe", number).Str("number", req.Number).Msg("contract saved")
	c.JSON(http.StatusOK, gin.H{"contract_id": contractID})
}

type generateContractRequest struct {
	Identifier     string `json:"identifier" binding:"required"`
	IdentifierKind string `json:"identifier_kind"`
	CodeContract   string `json:"code_contract"`
	ContractNumber string `json:"contract_number"`
	ContractDate   string `json:"contract_date"`
	OutputPath     string `json:"output_path"`
	ClaimEquipment bool   `json:"claim_equipment"`
}

func (h *Handler) generateContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req generateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := parseIdentifierKind(req.IdentifierKind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier_kind"})
		return
	}

	result, err := h.contracts.GenerateContract(c.Request.Context(), service.GenerateContractInput{
		Kind:           kind,
		Identifier:     strings.TrimSpace(req.Identifier),
		OutputPath:     req.OutputPath,
		CodeContract:   req.CodeContract,
		ContractNumber: req.ContractNumber,
		ContractDate:   req.ContractDate,
		ClaimEquipment: req.ClaimEquipment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info().Str("principal", principal).Str("identifier", req.Identifier).Str("path", result.Path).Msg("contract generated")
	c.JSON(http.StatusOK, gin.H{
		"path":              result.Path,
		"equipment_claimed": result.EquipmentClaimed,
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, docx.ErrTemplateNotFound):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parsePpeNumber(c *gin.Context) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.Param("number")))
}

func parseIdentifierKind(raw string) (model.IdentifierKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "ppe", "ppe_number", "facility":
		return model.ByFacilityNumber, nil
	case "inn":
		return model.ByINN, nil
	case "school", "school_id", "organization":
		return model.BySchoolID, nil
	default:
		return "", service.ErrInvalidInput
	}
}
