package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/models"
	"github.com/clientsbook/clientsbook-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler
func StartCronJobs() {
	c := cron.New()

	// Run every minute to catch appointments starting in about an hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder job: %v", err)
	}

	// Hourly sweep for premium subscriptions past their expiry
	_, err = c.AddFunc("0 * * * *", deactivateExpiredSubscriptions)
	if err != nil {
		log.Fatalf("Failed to add premium sweep job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendAppointmentReminders mails the master about appointments due in an hour
func sendAppointmentReminders() {
	var appointments []models.Appointment
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Client").Preload("Service").Preload("Provider").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusBooked, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Provider.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: %s at %s",
		appointment.Service.Name, appointment.StartTime.Format("15:04"))
	body := fmt.Sprintf(`
		<p>Upcoming appointment in one hour.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Client:</strong> %s (%s)</li>
			<li><strong>Start:</strong> %s</li>
			<li><strong>End:</strong> %s</li>
		</ul>
	`, appointment.Service.Name, appointment.Client.Name, appointment.Client.Phone,
		appointment.StartTime.Format("2006-01-02 15:04"),
		appointment.EndTime.Format("2006-01-02 15:04"))

	return utils.SendEmail(appointment.Provider.Email, subject, body)
}

// deactivateExpiredSubscriptions flips is_active off once expiry passes
func deactivateExpiredSubscriptions() {
	result := db.DB.Model(&models.PremiumSubscription{}).
		Where("is_active = ? AND expires_at < ?", true, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("Error sweeping expired subscriptions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired premium subscriptions", result.RowsAffected)
	}
}
