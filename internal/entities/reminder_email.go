package entities

type ReminderEmailData struct {
	UserName           string
	EventTitle         string
	Location           string
	StartTimeFormatted string
	EndTimeFormatted   string
	IsOnline           bool
}
