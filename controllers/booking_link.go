package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/utils"
)

// GetBookingLink returns the master's active booking link, if any
func GetBookingLink(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var link models.BookingLink
	if err := db.DB.Where("provider_id = ? AND is_active = ?", userID, true).First(&link).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No active booking link, create one first",
		})
	}
	return c.JSON(link)
}

// CreateBookingLink generates a booking link for the master. An existing
// active link is returned unchanged so the code stays shareable.
func CreateBookingLink(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var link models.BookingLink
	if db.DB.Where("provider_id = ? AND is_active = ?", userID, true).First(&link).RowsAffected > 0 {
		return c.JSON(link)
	}

	link = models.BookingLink{
		ProviderID: userID,
		Code:       utils.GenerateLinkCode(),
		IsActive:   true,
	}
	if err := db.DB.Create(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking link",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// ResolveBookingLink is the public entry into the booking flow: given a link
// code it returns the master's profile and service list.
func ResolveBookingLink(c *fiber.Ctx) error {
	code := c.Params("code")

	var link models.BookingLink
	if err := db.DB.Where("code = ? AND is_active = ?", code, true).First(&link).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking link is invalid or no longer active",
		})
	}

	var master models.User
	if err := db.DB.Preload("Services").First(&master, link.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Master not found",
		})
	}
	master.Password = ""

	return c.JSON(fiber.Map{
		"provider": master,
		"services": master.Services,
	})
}
