package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jaythan-dev/projeto-concessionaria/services"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

const ownerEntity = "Owner"

// OwnerHandler 车主控制器
type OwnerHandler struct {
	ownerService *services.OwnerService
}

// NewOwnerHandler 创建车主控制器
func NewOwnerHandler(ownerService *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// GetOwners 获取所有车主
func (h *OwnerHandler) GetOwners(c *gin.Context) {
	owners, err := h.ownerService.GetAllOwners(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, owners)
}

// GetOwner 获取单个车主
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	ownerID, ok := parseID(c, ownerEntity)
	if !ok {
		return
	}

	owner, err := h.ownerService.GetOwnerByID(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, owner)
}

// CreateOwner 创建车主
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	owner, err := h.ownerService.CreateOwner(c.Request.Context(), payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Created(c, owner)
}

// UpdateOwner 更新车主
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	ownerID, ok := parseID(c, ownerEntity)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	owner, err := h.ownerService.UpdateOwner(c.Request.Context(), ownerID, payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, owner)
}

// DeleteOwner 删除车主
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	ownerID, ok := parseID(c, ownerEntity)
	if !ok {
		return
	}

	if err := h.ownerService.DeleteOwner(c.Request.Context(), ownerID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Message(c, ownerEntity+" deleted")
}
