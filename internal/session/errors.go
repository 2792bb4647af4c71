package session

import "errors"

// Sentinel errors for the session engine.
// Use errors.Is to check: errors.Is(err, session.ErrSessionLimit)
var (
	ErrSessionLimit     = errors.New("session: daily session limit reached")
	ErrNoItems          = errors.New("session: no items available")
	ErrQuestionNotFound = errors.New("session: question not found")
	ErrSessionNotFound  = errors.New("session: session not found")
	ErrNotYourQuestion  = errors.New("session: question belongs to another user")
	ErrNotYourSession   = errors.New("session: session belongs to another user")
	ErrAlreadyCompleted = errors.New("session: session already completed")
	ErrAlreadyCorrect   = errors.New("session: question already answered correctly")
	ErrUnanswered       = errors.New("session: session has unanswered questions")
	ErrUnknownGameType  = errors.New("session: unknown game type")
)
