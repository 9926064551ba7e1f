package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/redis"
	"github.com/clientsbook/clientsbook-api/scheduler"
	"github.com/clientsbook/clientsbook-api/utils"
)

// resolveService loads the provider's service named in the service_id query
// parameter. The service supplies the duration every availability query needs.
func resolveService(c *fiber.Ctx, providerID uint) (*models.Service, error) {
	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil || serviceID <= 0 {
		return nil, errors.New("service_id query parameter is required")
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND provider_id = ?", serviceID, providerID).First(&service).Error; err != nil {
		return nil, errors.New("service not found for this master")
	}
	return &service, nil
}

// GetAvailableDates returns the dates within the horizon that still have at
// least one bookable slot for the chosen service. Results are cached briefly
// in Redis; every calendar write for the master invalidates the cache.
func GetAvailableDates(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerID")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider ID",
		})
	}

	service, err := resolveService(c, uint(providerID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	days := c.QueryInt("days", scheduler.DefaultHorizonDays)
	if days <= 0 {
		days = scheduler.DefaultHorizonDays
	}

	cacheKey := redis.DatesCacheKey(uint(providerID), service.ID, days)
	if cached, ok := redis.GetCachedDates(cacheKey); ok {
		return c.JSON(fiber.Map{"dates": cached, "cached": true})
	}

	dates, err := engine.AvailableDates(uint(providerID), days, service.Duration)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidDuration) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Service has an invalid duration",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute available dates",
			Error:   err.Error(),
		})
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}
	redis.CacheDates(cacheKey, formatted)

	return c.JSON(fiber.Map{"dates": formatted})
}

// GetAvailableSlots returns the bookable start times on one date for the
// chosen service.
func GetAvailableSlots(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerID")
	if err != nil || providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid provider ID",
		})
	}

	service, err := resolveService(c, uint(providerID))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	slots, err := engine.AvailableSlots(uint(providerID), date, service.Duration)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidDuration) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Service has an invalid duration",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute available slots",
			Error:   err.Error(),
		})
	}

	formatted := make([]string, 0, len(slots))
	for _, s := range slots {
		formatted = append(formatted, s.Format("15:04"))
	}

	return c.JSON(fiber.Map{
		"date":     date.Format("2006-01-02"),
		"duration": service.Duration,
		"slots":    formatted,
	})
}
