// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"gymnet-backend/models"
	"gymnet-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Class reminder scheduler started")
}

// SendDailyReminders notifies same-group gym members about every class
// happening today.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily class reminder processing...")

	now := time.Now()
	var sessions []models.Schedule
	err := s.db.
		Preload("Gym").
		Preload("Profile.User").
		Where("timestamp >= ? AND timestamp < ?", utils.BeginningOfDay(now), utils.EndOfDay(now)).
		Find(&sessions).Error
	if err != nil {
		log.Printf("Failed to fetch today's sessions: %v", err)
		return
	}

	for i := range sessions {
		s.remindGroupMembers(&sessions[i])
	}

	log.Println("Daily class reminder processing completed")
}

func (s *ReminderService) remindGroupMembers(session *models.Schedule) {
	var members []models.Profile
	err := s.db.
		Joins("JOIN profile_gyms ON profile_gyms.profile_id = profiles.id").
		Where("profile_gyms.gym_id = ? AND profiles.group_number = ?", session.GymID, session.Group).
		Find(&members).Error
	if err != nil {
		log.Printf("Session %s: failed to get group %d members: %v", session.ID, session.Group, err)
		return
	}

	address := session.Address
	if address == "" {
		address = session.Gym.Name
	}

	for _, member := range members {
		if member.PhoneNumber == "" || !utils.ValidatePhone(member.PhoneNumber) {
			continue
		}

		message := fmt.Sprintf("Your group %d class at %s starts today at %s (%s)",
			session.Group, session.Gym.Name, session.Timestamp.Local().Format("15:04"), address)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(member.PhoneNumber)
		params.SetBody(message)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""

		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", member.PhoneNumber, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", member.PhoneNumber, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", member.PhoneNumber)
		}

		reminderLog := models.ClassReminderLog{
			ScheduleID: session.ID,
			ProfileID:  member.ID,
			Message:    message,
			Status:     status,
			ErrorMsg:   errorMsg,
			SentAt:     time.Now(),
		}

		if err := s.db.Create(&reminderLog).Error; err != nil {
			log.Printf("Failed to log reminder for profile %s: %v", member.ID, err)
		}
	}
}
