package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/redis"
	"github.com/clientsbook/clientsbook-api/scheduler"
	"github.com/clientsbook/clientsbook-api/utils"
)

type workingSlotInput struct {
	Date      string `json:"date"` // "2006-01-02"
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBlocked bool   `json:"is_blocked"`
}

// weekScheduleRange bounds the week view: today through six days ahead, as a
// half-open [from, to) date range covering exactly seven calendar days.
func weekScheduleRange(now time.Time) (time.Time, time.Time) {
	from := scheduler.DateOf(now)
	return from, from.AddDate(0, 0, 7)
}

// GetWeekSchedule shows the master's slots for the next 7 days, open and
// blocked together
func GetWeekSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	from, to := weekScheduleRange(time.Now())
	slots, err := slotStore.ListRange(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// GetDaySchedule shows the master's slots for one date
func GetDaySchedule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	slots, err := slotStore.ListWindows(userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// CreateWorkingSlot adds a working interval or a blocked (rest) interval to
// the master's calendar. Input is validated before anything is persisted.
func CreateWorkingSlot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(workingSlotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	if date.Before(scheduler.DateOf(time.Now())) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot add slots on a past date",
		})
	}

	start, err := scheduler.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start time, expected HH:MM",
			Error:   err.Error(),
		})
	}
	end, err := scheduler.ParseTimeOfDay(input.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end time, expected HH:MM",
			Error:   err.Error(),
		})
	}
	if start >= end {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Start time must be before end time",
			Error:   scheduler.ErrInvalidRange.Error(),
		})
	}

	slot := models.WorkingSlot{
		ProviderID: userID,
		Date:       date,
		StartTime:  start.String(),
		EndTime:    end.String(),
		IsBlocked:  input.IsBlocked,
	}
	if err := slotStore.Create(&slot); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create slot",
			Error:   err.Error(),
		})
	}

	redis.InvalidateProvider(userID)
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// DeleteWorkingSlot removes a slot from the master's calendar
func DeleteWorkingSlot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid slot ID",
			Error:   err.Error(),
		})
	}

	if err := slotStore.Delete(userID, uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete slot",
			Error:   err.Error(),
		})
	}

	redis.InvalidateProvider(userID)
	return c.SendStatus(fiber.StatusNoContent)
}
