package models

// Entities mirror the backend wire format. Timestamps stay as the raw ISO
// strings the backend sends (UTC instants for created/updated, bare
// YYYY-MM-DD for habit due dates); conversion to the viewer's calendar
// happens in the timeline package.

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Thought struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Todo struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Habit struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	Title         string         `json:"title"`
	Description   *string        `json:"description"`
	Frequency     Frequency      `json:"frequency"`
	FrequencyData map[string]any `json:"frequency_data"`
	StartDate     string         `json:"start_date"`
	EndDate       *string        `json:"end_date"`
	DueTime       *string        `json:"due_time"` // HH:MM, no date component
	IsActive      bool           `json:"is_active"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

// HabitInstance is one scheduled occurrence of a habit on a specific
// calendar date. Habit is the parent template; nil if it was deleted.
type HabitInstance struct {
	ID          string  `json:"id"`
	HabitID     string  `json:"habit_id"`
	UserID      string  `json:"user_id"`
	DueDate     string  `json:"due_date"` // YYYY-MM-DD
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
	Skipped     bool    `json:"skipped"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Habit       *Habit  `json:"habit"`
}

type Stats struct {
	ThoughtsCount           int     `json:"thoughts_count"`
	TodosCount              int     `json:"todos_count"`
	CompletedTodosCount     int     `json:"completed_todos_count"`
	CompletionRate          float64 `json:"completion_rate"`
	HabitsCount             int     `json:"habits_count"`
	HabitInstancesTotal     int     `json:"habit_instances_total"`
	HabitInstancesCompleted int     `json:"habit_instances_completed"`
	HabitCompletionRate     float64 `json:"habit_completion_rate"`
}
