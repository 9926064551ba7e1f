package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/redis"
	"github.com/clientsbook/clientsbook-api/scheduler"
	"github.com/clientsbook/clientsbook-api/utils"
)

type appointmentInput struct {
	ProviderID  uint   `json:"provider_id"`
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceID   uint   `json:"service_id"`
	StartTime   string `json:"start_time"` // "2006-01-02 15:04"
}

var errMissingClientContact = errors.New("client_name and client_phone are required without a client_id")

// bookingClientStore is the slice of the client base the booking flow needs.
type bookingClientStore interface {
	Get(providerID, clientID uint) (*models.Client, error)
	FindByPhone(providerID uint, phone string) (*models.Client, error)
	Create(client *models.Client) error
}

// resolveBookingClient turns the booking payload into a client record. A
// master booking on a client's behalf passes client_id; an anonymous client
// coming through the booking link passes name and phone instead, and the
// record is reused by phone or created on the spot.
func resolveBookingClient(clients bookingClientStore, providerID uint, input *appointmentInput) (*models.Client, error) {
	if input.ClientID != 0 {
		return clients.Get(providerID, input.ClientID)
	}

	if input.ClientName == "" || input.ClientPhone == "" {
		return nil, errMissingClientContact
	}

	client, err := clients.FindByPhone(providerID, input.ClientPhone)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = &models.Client{
		ProviderID: providerID,
		Name:       input.ClientName,
		Phone:      input.ClientPhone,
	}
	if err := clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// CreateAppointment confirms a booking. The slot the client saw is re-checked
// inside the commit, so a competing booking in the meantime surfaces as a
// conflict instead of a double booking.
func CreateAppointment(c *fiber.Ctx) error {
	input := new(appointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", input.StartTime, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start time, expected YYYY-MM-DD HH:MM",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND provider_id = ?", input.ServiceID, input.ProviderID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found for this master",
			Error:   err.Error(),
		})
	}

	client, err := resolveBookingClient(clientStore, input.ProviderID, input)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found for this master",
			Error:   err.Error(),
		})
	case errors.Is(err, errMissingClientContact):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Booking needs a client_id or a client name and phone",
			Error:   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Could not resolve booking client",
			Error:   err.Error(),
		})
	}

	appointment := models.Appointment{
		ProviderID: input.ProviderID,
		ClientID:   client.ID,
		ServiceID:  input.ServiceID,
		StartTime:  start,
	}

	if err := engine.CommitBooking(&appointment, service.Duration); err != nil {
		switch {
		case errors.Is(err, scheduler.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot is no longer available, please pick another",
				Error:   err.Error(),
			})
		case errors.Is(err, scheduler.ErrPastDate), errors.Is(err, scheduler.ErrInvalidDuration):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid booking request",
				Error:   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create appointment",
				Error:   err.Error(),
			})
		}
	}

	redis.InvalidateProvider(input.ProviderID)
	go sendBookingEmails(&appointment, &service, client)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func sendBookingEmails(appointment *models.Appointment, service *models.Service, client *models.Client) {
	var master models.User
	if err := db.DB.First(&master, appointment.ProviderID).Error; err != nil {
		log.Printf("booking email: master %d not found: %v", appointment.ProviderID, err)
		return
	}

	body := fmt.Sprintf(`
		<p>New appointment booked.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Client:</strong> %s (%s)</li>
			<li><strong>Start:</strong> %s</li>
			<li><strong>End:</strong> %s</li>
		</ul>
	`, service.Name, client.Name, client.Phone,
		appointment.StartTime.Format("2006-01-02 15:04"),
		appointment.EndTime.Format("2006-01-02 15:04"))

	if err := utils.SendEmail(master.Email, "New appointment", body); err != nil {
		log.Printf("booking email: failed to notify master %d: %v", master.ID, err)
	}
}

// GetUpcomingAppointments lists the master's booked appointments from now on
func GetUpcomingAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appointments, err := apptStore.ListUpcoming(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// UpdateAppointmentStatus completes or cancels an appointment
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	type statusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	// A cancellation frees the interval.
	if input.Status == models.StatusCanceled {
		redis.InvalidateProvider(userID)
	}
	return c.JSON(appointment)
}

// DeleteAppointment removes a booked appointment
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	// Prevent deletion of completed or canceled appointments
	if appointment.Status == models.StatusCompleted || appointment.Status == models.StatusCanceled {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Cannot delete a completed or canceled appointment",
		})
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateProvider(userID)
	return c.SendStatus(fiber.StatusNoContent)
}
