package orgchartapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orgstruct/bff/pkg/orgchart"
	"github.com/orgstruct/bff/pkg/orgchart/orgchartsrv"
)

type ChartHandlers struct {
	service *orgchartsrv.ChartService
}

func NewChartHandlers(service *orgchartsrv.ChartService) *ChartHandlers {
	return &ChartHandlers{service: service}
}

func (h *ChartHandlers) RegisterRoutes(router fiber.Router) {
	router.Get("/employees", h.GetEmployees)
	router.Get("/projects-structure", h.GetProjectsStructure)

	global := router.Group("/global")
	global.Get("/config", h.GetConfig)
	global.Patch("/config", h.PatchConfig)
}

func (h *ChartHandlers) GetEmployees(c *fiber.Ctx) error {
	nodes, err := h.service.GetEmployees(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(nodes)
}

func (h *ChartHandlers) GetProjectsStructure(c *fiber.Ctx) error {
	nodes, err := h.service.GetProjectsStructure(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(nodes)
}

func (h *ChartHandlers) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.service.GetGlobalConfig(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}

type patchConfigRequest struct {
	Peoples  orgchart.Graph `json:"peoples"`
	Projects orgchart.Graph `json:"projects"`
}

func (h *ChartHandlers) PatchConfig(c *fiber.Ctx) error {
	var req patchConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return orgchart.ErrInvalidPayload().WithDetail("reason", err.Error())
	}

	cfg, err := h.service.PatchGlobalConfig(c.Context(), req.Peoples, req.Projects)
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}
