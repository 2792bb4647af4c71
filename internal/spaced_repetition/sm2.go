package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/skool/pkg/models"
)

// QualityResponse represents the quality of a recall in SM-2 (0-5)
type QualityResponse int

const (
	// Wrong answer, even after a retry
	QualityWrong QualityResponse = 1
	// Correct on a retry after an initial miss
	QualityHesitant QualityResponse = 3
	// Correct on the first attempt
	QualityPerfect QualityResponse = 5
)

// MinEasinessFactor is the SM-2 floor preventing runaway difficulty
const MinEasinessFactor = 1.3

// QualityFor maps an answer outcome to an SM-2 quality score.
// An answer gotten right without a miss is trusted more than one
// corrected after a retry.
func QualityFor(isCorrect, isFirstAttempt bool) QualityResponse {
	if !isCorrect {
		return QualityWrong
	}
	if isFirstAttempt {
		return QualityPerfect
	}
	return QualityHesitant
}

// MasteryFromRepetitions maps SM-2 repetitions to the coarse 0-5 display
// score used by the UI and achievements. Not used for scheduling.
func MasteryFromRepetitions(repetitions int) int {
	switch {
	case repetitions <= 0:
		return 0
	case repetitions == 1:
		return 1
	case repetitions == 2:
		return 2
	case repetitions <= 4:
		return 3
	case repetitions <= 6:
		return 4
	default:
		return 5
	}
}

// Update applies one recall attempt to a progress record in place.
//
// Correct answers grow the review interval (1, 3, then round(interval*EF))
// and extend the repetition streak. A wrong answer resets repetitions and
// schedules review again the same day. The easiness factor is adjusted on
// every attempt and never drops below MinEasinessFactor.
func Update(p *models.Progress, isCorrect, isFirstAttempt bool, now time.Time) {
	quality := QualityFor(isCorrect, isFirstAttempt)

	if isCorrect {
		p.CorrectCount++
	} else {
		p.WrongCount++
	}

	if quality >= QualityHesitant {
		var interval int
		switch p.Repetitions {
		case 0:
			interval = 1
		case 1:
			interval = 3
		default:
			interval = int(math.Round(float64(p.Interval) * p.EasinessFactor))
		}
		if interval < 1 {
			interval = 1
		}
		p.Repetitions++
		p.Interval = interval
	} else {
		p.Repetitions = 0
		p.Interval = 0 // review again today
	}

	q := float64(quality)
	ef := p.EasinessFactor + 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ef < MinEasinessFactor {
		ef = MinEasinessFactor
	}
	p.EasinessFactor = ef

	next := models.DateOnly(now).AddDate(0, 0, p.Interval)
	p.NextReviewDate = &next
	p.MasteryScore = MasteryFromRepetitions(p.Repetitions)

	seen := now
	p.LastSeen = &seen
}
