package selection

import (
	"math/rand"

	"github.com/example/skool/pkg/models"
)

// UnseenWeight is the selection weight for items with no mastery record,
// equal to the weight of an item whose mastery has been reset to zero.
const UnseenWeight = 6

// Weight returns the selection weight for one candidate. Low-mastery items
// come up more often; a fully mastered item keeps a floor weight of 1 so
// spaced practice never stops entirely.
func Weight(mastery map[int64]int, itemID int64) int {
	score, seen := mastery[itemID]
	if !seen {
		return UnseenWeight
	}
	w := UnseenWeight - score
	if w < 1 {
		w = 1
	}
	return w
}

// Select picks up to count items from the pool, weighted by inverse
// mastery, without replacement. The result is a biased-but-randomized
// ordering favoring weak and unseen material rather than a deterministic
// weakest-first sort, so sessions stay varied.
func Select(pool []models.Item, mastery map[int64]int, count int, rng *rand.Rand) []models.Item {
	remaining := make([]models.Item, len(pool))
	copy(remaining, pool)

	if count > len(remaining) {
		count = len(remaining)
	}

	selected := make([]models.Item, 0, count)
	for len(selected) < count {
		total := 0
		for _, item := range remaining {
			total += Weight(mastery, item.ID)
		}

		r := rng.Float64() * float64(total)
		cumulative := 0.0
		for i, item := range remaining {
			cumulative += float64(Weight(mastery, item.ID))
			if r <= cumulative {
				selected = append(selected, item)
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return selected
}
