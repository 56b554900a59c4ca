// services/alarm_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"solarops-backend/models"
	"solarops-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// AlarmService watches reminder and task alarm times and fires
// notifications when they come due. It replaces the one-minute polling
// loop the old browser client ran.
type AlarmService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewAlarmService(db *gorm.DB) *AlarmService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &AlarmService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *AlarmService) StartScheduler() {
	c := cron.New()

	// Due-ness check every minute, daily digest at 8 AM
	c.AddFunc("* * * * *", s.CheckDueAlarms)
	c.AddFunc("0 8 * * *", s.SendDailyDigest)

	c.Start()
	log.Println("Alarm scheduler started")
}

// CheckDueAlarms fires an alarm for every uncompleted reminder and task
// whose date is today and whose alarm time matches the current minute.
func (s *AlarmService) CheckDueAlarms() {
	today := utils.Today()
	now := utils.ClockMinute()

	var reminders []models.Reminder
	if err := s.db.Where("date = ? AND time = ? AND is_completed = false AND is_archived = false", today, now).
		Find(&reminders).Error; err != nil {
		log.Printf("Failed to fetch due reminders: %v", err)
	} else {
		for _, r := range reminders {
			s.fire("reminder", r.ID, r.Title, fmt.Sprintf("Lembrete: %s - %s", r.Title, r.Description))
		}
	}

	var tasks []models.Task
	if err := s.db.Where("due_date = ? AND alarm_time = ? AND status <> ?", today, now, models.TaskStatusCompleted).
		Find(&tasks).Error; err != nil {
		log.Printf("Failed to fetch due tasks: %v", err)
	} else {
		for _, t := range tasks {
			s.fire("task", t.ID, t.Title, fmt.Sprintf("Alarme: %s", t.Title))
		}
	}
}

// countOverdueInstallations returns how many open installations are past
// their deadline as of now. Unparseable deadlines are skipped.
func countOverdueInstallations(installations []models.Installation, now time.Time) int {
	overdue := 0
	for _, inst := range installations {
		if inst.Status == models.StatusResolved || inst.DeadlineDate == "" {
			continue
		}
		deadline, err := time.Parse("2006-01-02", inst.DeadlineDate)
		if err != nil {
			continue
		}
		if utils.DaysBetween(deadline, now) > 0 {
			overdue++
		}
	}
	return overdue
}

// SendDailyDigest reports how many urgent jobs are still open and how
// many installations have blown their deadline.
func (s *AlarmService) SendDailyDigest() {
	var pending int64
	for _, model := range []interface{}{&models.Scheduling{}, &models.InverterConfig{}, &models.Installation{}} {
		var n int64
		if err := s.db.Model(model).
			Where("status <> ? AND priority = ?", models.StatusResolved, models.PriorityUrgent).
			Count(&n).Error; err != nil {
			log.Printf("Digest count failed: %v", err)
			return
		}
		pending += n
	}

	var installations []models.Installation
	if err := s.db.Where("status <> ? AND deadline_date <> ''", models.StatusResolved).
		Find(&installations).Error; err != nil {
		log.Printf("Digest deadline query failed: %v", err)
		return
	}
	overdue := countOverdueInstallations(installations, time.Now())

	if pending == 0 && overdue == 0 {
		return
	}
	msg := fmt.Sprintf("Resumo diário: %d ordens urgentes em aberto", pending)
	if overdue > 0 {
		msg += fmt.Sprintf(", %d instalações com prazo vencido", overdue)
	}
	s.fire("digest", uuid.Nil, "Resumo diário", msg)
}

func (s *AlarmService) fire(sourceType string, sourceID uuid.UUID, title, message string) {
	channel := "log"
	status := "sent"
	errorMsg := ""

	to := os.Getenv("ALERT_PHONE_NUMBER")
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" && to != "" {
		params := &twilioApi.CreateMessageParams{}
		params.SetBody(message)

		// WhatsApp for E.164 numbers, plain SMS otherwise
		if strings.HasPrefix(to, "+") {
			channel = "whatsapp"
			params.SetTo("whatsapp:" + to)
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			channel = "sms"
			params.SetTo(to)
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Printf("Failed to send alarm %q: %v", title, err)
			status = "failed"
			errorMsg = err.Error()
		}
	} else {
		log.Printf("ALARM %s", message)
	}

	alarmLog := models.AlarmLog{
		SourceType:   sourceType,
		SourceID:     sourceID,
		Title:        title,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&alarmLog).Error; err != nil {
		log.Printf("Failed to log alarm %q: %v", title, err)
	}
}
