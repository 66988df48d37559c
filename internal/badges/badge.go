package badges

import "time"

// Badge is a single earned award shown on the badges screen.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedDate"`
}
