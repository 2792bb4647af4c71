package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Emoji sets for counting mode
var countingEmojis = []string{"🍎", "🍊", "🍋", "🍉", "🍇", "🍓", "🌟", "🚗", "🐟", "🎈"}

// MathGenerator produces age-appropriate arithmetic questions for math
// sessions, which carry no item link and skip the mastery store.
type MathGenerator struct {
	Age int
}

// Generate returns count questions in the shared question shape.
func (g *MathGenerator) Generate(count int, rng *rand.Rand) ([]QuestionData, error) {
	questions := make([]QuestionData, 0, count)
	for i := 0; i < count; i++ {
		var q QuestionData
		if g.Age <= 5 {
			switch rng.Intn(3) {
			case 0:
				q = genCounting(rng)
			case 1:
				q = genAddition(rng, 10)
			default:
				q = genSubtraction(rng, 10)
			}
		} else {
			switch rng.Intn(3) {
			case 0:
				q = genAddition(rng, 20)
			case 1:
				q = genSubtraction(rng, 20)
			default:
				q = genMultiplication(rng)
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func genCounting(rng *rand.Rand) QuestionData {
	n := 1 + rng.Intn(10)
	visual := strings.Repeat(countingEmojis[rng.Intn(len(countingEmojis))], n)
	return QuestionData{
		Mode:          "counting",
		Prompt:        visual,
		CorrectAnswer: strconv.Itoa(n),
		Options:       numberOptions(n, 1, 10, rng),
	}
}

func genAddition(rng *rand.Rand, limit int) QuestionData {
	a := 1 + rng.Intn(limit-1)
	b := 1 + rng.Intn(limit-a)
	ans := a + b
	return QuestionData{
		Mode:          "addition",
		Prompt:        fmt.Sprintf("%d + %d = ?", a, b),
		CorrectAnswer: strconv.Itoa(ans),
		Options:       numberOptions(ans, 1, limit, rng),
	}
}

func genSubtraction(rng *rand.Rand, limit int) QuestionData {
	a := 2 + rng.Intn(limit-1)
	b := 1 + rng.Intn(a-1)
	ans := a - b
	return QuestionData{
		Mode:          "subtraction",
		Prompt:        fmt.Sprintf("%d - %d = ?", a, b),
		CorrectAnswer: strconv.Itoa(ans),
		Options:       numberOptions(ans, 0, limit, rng),
	}
}

func genMultiplication(rng *rand.Rand) QuestionData {
	a := 2 + rng.Intn(8)
	b := 2 + rng.Intn(8)
	ans := a * b
	return QuestionData{
		Mode:          "multiplication",
		Prompt:        fmt.Sprintf("%d × %d = ?", a, b),
		CorrectAnswer: strconv.Itoa(ans),
		Options:       numberOptions(ans, 1, 81, rng),
	}
}

// numberOptions builds two plausible wrong answers near the correct one and
// returns the shuffled list of three.
func numberOptions(correct, low, high int, rng *rand.Rand) []string {
	nearby := make([]int, 0, 6)
	for n := correct - 3; n <= correct+3; n++ {
		if n != correct && n >= low && n <= high {
			nearby = append(nearby, n)
		}
	}
	rng.Shuffle(len(nearby), func(i, j int) { nearby[i], nearby[j] = nearby[j], nearby[i] })

	distractors := make(map[int]bool)
	for _, n := range nearby {
		distractors[n] = true
		if len(distractors) >= 2 {
			break
		}
	}
	for len(distractors) < 2 {
		d := correct + []int{-2, -1, 1, 2, 3}[rng.Intn(5)]
		if d != correct && d >= 0 {
			distractors[d] = true
		}
	}

	options := []string{strconv.Itoa(correct)}
	for d := range distractors {
		options = append(options, strconv.Itoa(d))
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
