package generator

import (
	"math/rand"

	"github.com/example/skool/pkg/models"
)

// Question modes for item-backed sessions:
//   "char_to_image"   shows the character, pick the correct image
//   "char_to_meaning" shows the character, pick the correct English meaning
//   "meaning_to_char" shows the English word, pick the correct character
const (
	ModeCharToImage   = "char_to_image"
	ModeCharToMeaning = "char_to_meaning"
	ModeMeaningToChar = "meaning_to_char"
)

// QuestionData is one generated question: a prompt, the correct answer and
// a shuffled option set of 1 correct answer + distractors.
type QuestionData struct {
	Mode          string
	Prompt        string
	CorrectAnswer string
	Options       []string
}

// Confusable groups: meanings whose icons look too similar for a small
// child. Distractors are never drawn from the same group as the answer.
var confusableGroups = [][]string{
	{"red", "blue", "green", "yellow", "white", "black", "pink", "orange"},
	{"up", "down", "left", "right"},
	{"run", "walk", "jump", "swim"},
	{"eat", "drink"},
	{"happy", "sad", "cry", "laugh", "love"},
	{"person", "dad", "mom", "baby", "friend", "teacher", "brother", "sister"},
	{"big", "small", "long", "short"},
	{"fast", "slow"},
	{"hot", "cold"},
	{"water", "rain", "sea/ocean", "river"},
	{"cat", "dog"},
	{"bird", "chicken", "penguin", "parrot"},
	{"car", "bus", "train", "bike", "subway"},
	{"horse", "cow", "sheep", "pig", "elephant", "bear", "tiger"},
	{"fish", "frog", "dolphin", "whale", "turtle", "shrimp"},
	{"sit", "stand"},
	{"sing", "dance"},
	{"house", "school", "hospital", "restaurant", "supermarket"},
}

var confusableLookup = buildConfusableLookup()

func buildConfusableLookup() map[string]map[string]bool {
	lookup := make(map[string]map[string]bool)
	for _, group := range confusableGroups {
		set := make(map[string]bool, len(group))
		for _, meaning := range group {
			set[meaning] = true
		}
		for _, meaning := range group {
			lookup[meaning] = set
		}
	}
	return lookup
}

func excludeConfusable(correct models.Item, candidates []models.Item) []models.Item {
	group := confusableLookup[correct.Meaning]
	if group == nil {
		return candidates
	}
	filtered := make([]models.Item, 0, len(candidates))
	for _, c := range candidates {
		if !group[c.Meaning] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// PickMode chooses a question mode the item can support.
func PickMode(item models.Item, rng *rand.Rand) string {
	modes := []string{ModeCharToMeaning, ModeMeaningToChar}
	if item.ImageURL != "" {
		modes = append(modes, ModeCharToImage)
	}
	return modes[rng.Intn(len(modes))]
}

// BuildQuestion generates a question for one item: the prompt and answer
// derived from the mode, plus distractors drawn from the rest of the pool
// (confusable meanings excluded) and shuffled together with the answer.
func BuildQuestion(item models.Item, pool []models.Item, mode string, distractors int, rng *rand.Rand) QuestionData {
	candidates := make([]models.Item, 0, len(pool))
	for _, c := range pool {
		if c.ID != item.ID {
			candidates = append(candidates, c)
		}
	}
	candidates = excludeConfusable(item, candidates)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	q := QuestionData{Mode: mode}
	var pick func(models.Item) string
	switch mode {
	case ModeCharToImage:
		q.Prompt = item.Label
		q.CorrectAnswer = item.ImageURL
		pick = func(c models.Item) string { return c.ImageURL }
	case ModeMeaningToChar:
		q.Prompt = item.Meaning
		q.CorrectAnswer = item.Label
		pick = func(c models.Item) string { return c.Label }
	default: // char_to_meaning
		q.Prompt = item.Label
		q.CorrectAnswer = item.Meaning
		pick = func(c models.Item) string { return c.Meaning }
	}

	options := []string{q.CorrectAnswer}
	used := map[string]bool{q.CorrectAnswer: true}
	for _, c := range candidates {
		if len(options) > distractors {
			break
		}
		opt := pick(c)
		if opt == "" || used[opt] {
			continue
		}
		used[opt] = true
		options = append(options, opt)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	q.Options = options
	return q
}
