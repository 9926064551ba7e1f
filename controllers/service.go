package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/utils"
)

// GetAllServices returns the authenticated master's services
func GetAllServices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var services []models.Service
	if err := db.DB.Where("provider_id = ?", userID).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	var service models.Service
	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// CreateService creates a new service for the authenticated master
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if service.Name == "" || service.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Service needs a name and a positive duration in minutes",
		})
	}

	newService := models.Service{
		Name:       service.Name,
		Duration:   service.Duration,
		Price:      service.Price,
		ProviderID: c.Locals("userID").(uint),
	}
	if err := db.DB.Create(&newService).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(newService)
}

// UpdateService updates one of the master's services
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	var service models.Service
	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Service)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Duration > 0 {
		service.Duration = input.Duration
	}
	if input.Price > 0 {
		service.Price = input.Price
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService deletes one of the master's services
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).Delete(&models.Service{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
