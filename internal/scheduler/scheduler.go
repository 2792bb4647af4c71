package scheduler

import (
	"log"
	"time"

	"github.com/example/skool/internal/database"
	"github.com/example/skool/pkg/models"
	"github.com/go-co-op/gocron"
)

// Reminder describes one outbound nudge for a learner's parent.
type Reminder struct {
	User         models.User
	DueItems     int  // items whose next review date has arrived
	StreakAtRisk bool // true when the streak lapses unless they play today
}

// Notifier delivers reminders to parents.
type Notifier interface {
	SendReminder(r Reminder) error
}

// Scheduler runs the hourly reminder sweep: for every user whose
// notification hour has arrived, it checks for due reviews and streaks
// about to lapse and hands the result to the notifier.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	users     *database.UserRepository
	progress  *database.ProgressRepository
}

// New creates a scheduler instance
func New(notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		users:     database.NewUserRepository(),
		progress:  database.NewProgressRepository(),
	}
}

// Start begins running the reminder sweep once per hour, non-blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminders() {
	now := time.Now()
	users, err := s.users.GetAll()
	if err != nil {
		log.Printf("Error getting users for reminders: %v", err)
		return
	}

	for _, user := range users {
		if user.ParentChatID == 0 || user.NotificationHour != now.Hour() {
			continue
		}

		due, err := s.progress.DueForUser(user.ID, now)
		if err != nil {
			log.Printf("Error getting due items for user %d: %v", user.ID, err)
			continue
		}

		atRisk := streakAtRisk(&user, now)
		if len(due) == 0 && !atRisk {
			continue
		}

		r := Reminder{User: user, DueItems: len(due), StreakAtRisk: atRisk}
		if err := s.notifier.SendReminder(r); err != nil {
			log.Printf("Error sending reminder for user %d: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a reminder check for a specific user.
func (s *Scheduler) RunManualCheck(userID int64) error {
	now := time.Now()
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	due, err := s.progress.DueForUser(userID, now)
	if err != nil {
		return err
	}
	atRisk := streakAtRisk(user, now)
	if len(due) == 0 && !atRisk {
		return nil
	}
	return s.notifier.SendReminder(Reminder{User: *user, DueItems: len(due), StreakAtRisk: atRisk})
}

// streakAtRisk reports whether the user has an active streak but hasn't
// played yet today.
func streakAtRisk(u *models.User, now time.Time) bool {
	if u.Streak == 0 || u.LastPlayedDate == nil {
		return false
	}
	return u.LastPlayedDate.Before(models.DateOnly(now))
}
