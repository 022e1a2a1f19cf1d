package service

import (
	"fmt"
	"log"
	"time"

	"lifehub/internal/entities"
	"lifehub/internal/repository"
)

// SenderService turns upcoming events into reminder emails and SMS.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendEventReminderEmail(info repository.ReminderInfo) {
	ev := info.Event
	loc := reminderLocation(ev.Timezone)

	data := entities.ReminderEmailData{
		UserName:           info.OwnerName,
		EventTitle:         ev.Title,
		Location:           ev.Location,
		StartTimeFormatted: ev.Start.In(loc).Format("02 Jan 2006 15:04 MST"),
		EndTimeFormatted:   ev.End.In(loc).Format("02 Jan 2006 15:04 MST"),
		IsOnline:           ev.IsOnline,
	}

	where := data.Location
	if data.IsOnline {
		where = "online"
	}
	subject := fmt.Sprintf("Reminder: %s at %s", data.EventTitle, data.StartTimeFormatted)
	plainBody := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder for your upcoming event.\n\n"+
			"Event: %s\n"+
			"Where: %s\n"+
			"Starts: %s\n"+
			"Ends: %s\n\n"+
			"LifeHub",
		data.UserName, data.EventTitle, where, data.StartTimeFormatted, data.EndTimeFormatted,
	)

	go func(toEmail, toName, subject, body string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, body, ""); err != nil {
			log.Printf("ALERT (async): reminder email for event %s failed: %v", ev.ID, err)
		}
	}(info.OwnerEmail, info.OwnerName, subject, plainBody)
}

func (s *SenderService) SendEventReminderSMS(info repository.ReminderInfo) {
	if info.OwnerPhone == "" {
		return
	}
	ev := info.Event
	loc := reminderLocation(ev.Timezone)

	message := fmt.Sprintf("LifeHub: %s starts at %s. Details in your email.",
		ev.Title, ev.Start.In(loc).Format("02/01 15:04"))

	if err := SendSMS(info.OwnerPhone, message); err != nil {
		log.Printf("ALERT: reminder SMS for event %s to %s failed: %v", ev.ID, info.OwnerPhone, err)
	}
}

// reminderLocation resolves the event's informational timezone label for
// display only; scheduling never uses it.
func reminderLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
