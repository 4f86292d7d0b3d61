package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jaythan-dev/projeto-concessionaria/services"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

const carEntity = "Car"

// CarHandler 汽车控制器
type CarHandler struct {
	carService *services.CarService
}

// NewCarHandler 创建汽车控制器
func NewCarHandler(carService *services.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// GetCars 获取所有汽车，包含品牌和车主
func (h *CarHandler) GetCars(c *gin.Context) {
	cars, err := h.carService.GetAllCars(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, cars)
}

// GetCar 获取单个汽车
func (h *CarHandler) GetCar(c *gin.Context) {
	carID, ok := parseID(c, carEntity)
	if !ok {
		return
	}

	car, err := h.carService.GetCarByID(c.Request.Context(), carID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, car)
}

// CreateCar 创建汽车
func (h *CarHandler) CreateCar(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Created(c, car)
}

// UpdateCar 更新汽车
func (h *CarHandler) UpdateCar(c *gin.Context) {
	carID, ok := parseID(c, carEntity)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), carID, payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, car)
}

// DeleteCar 删除汽车
func (h *CarHandler) DeleteCar(c *gin.Context) {
	carID, ok := parseID(c, carEntity)
	if !ok {
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), carID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Message(c, carEntity+" deleted")
}
