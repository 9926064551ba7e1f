package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/utils"
)

// GetAllClients returns the authenticated master's client base
func GetAllClients(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var clients []models.Client
	if err := db.DB.Where("provider_id = ?", userID).Order("name").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}
	return c.JSON(clients)
}

func GetClient(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	var client models.Client
	if err := db.DB.Preload("Appointments").Where("id = ? AND provider_id = ?", id, userID).First(&client).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(client)
}

// CreateClient adds a client record to the master's base
func CreateClient(c *fiber.Ctx) error {
	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if client.Name == "" || client.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Client needs a name and a phone number",
		})
	}

	client.ProviderID = c.Locals("userID").(uint)
	if err := db.DB.Create(client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create client",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient edits a client record
func UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	var client models.Client
	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).First(&client).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Client)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.Notes != "" {
		client.Notes = input.Notes
	}
	if input.Contact != "" {
		client.Contact = input.Contact
	}

	if err := db.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update client",
			Error:   err.Error(),
		})
	}
	return c.JSON(client)
}

// DeleteClient removes a client record
func DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).Delete(&models.Client{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete client",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
