package mockapi

import "time"

// Student is a learner profile.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Grade      string    `json:"grade"`
	Section    string    `json:"section"`
	Email      string    `json:"email"`
	JoinedDate time.Time `json:"joinedDate"`
}

// ProfileInput carries the editable profile fields for create/update.
type ProfileInput struct {
	Name    string
	Grade   string
	Section string
	Email   string
}

// AcademicScore is one graded topic entry on the dashboard.
type AcademicScore struct {
	ID    string    `json:"id"`
	Topic string    `json:"topic"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// PhysicalActivity is one logged activity entry on the dashboard.
type PhysicalActivity struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Duration int       `json:"duration"` // minutes
	Date     time.Time `json:"date"`
}
