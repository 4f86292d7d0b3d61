package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jaythan-dev/projeto-concessionaria/services"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

const brandEntity = "Brand"

// BrandHandler 品牌控制器
type BrandHandler struct {
	brandService *services.BrandService
}

// NewBrandHandler 创建品牌控制器
func NewBrandHandler(brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// GetBrands 获取所有品牌
func (h *BrandHandler) GetBrands(c *gin.Context) {
	brands, err := h.brandService.GetAllBrands(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, brands)
}

// GetBrand 获取单个品牌
func (h *BrandHandler) GetBrand(c *gin.Context) {
	brandID, ok := parseID(c, brandEntity)
	if !ok {
		return
	}

	brand, err := h.brandService.GetBrandByID(c.Request.Context(), brandID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, brand)
}

// CreateBrand 创建品牌
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	brand, err := h.brandService.CreateBrand(c.Request.Context(), payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Created(c, brand)
}

// UpdateBrand 更新品牌
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	brandID, ok := parseID(c, brandEntity)
	if !ok {
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	brand, err := h.brandService.UpdateBrand(c.Request.Context(), brandID, payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, brand)
}

// DeleteBrand 删除品牌
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	brandID, ok := parseID(c, brandEntity)
	if !ok {
		return
	}

	if err := h.brandService.DeleteBrand(c.Request.Context(), brandID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Message(c, brandEntity+" deleted")
}
