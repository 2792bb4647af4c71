package generator

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skool/pkg/models"
)

func testPool() []models.Item {
	return []models.Item{
		{ID: 1, Label: "猫", Meaning: "cat", ImageURL: "/img/cat.png"},
		{ID: 2, Label: "狗", Meaning: "dog", ImageURL: "/img/dog.png"},
		{ID: 3, Label: "鱼", Meaning: "fish", ImageURL: "/img/fish.png"},
		{ID: 4, Label: "书", Meaning: "book", ImageURL: "/img/book.png"},
		{ID: 5, Label: "车", Meaning: "car", ImageURL: "/img/car.png"},
	}
}

func TestBuildQuestionOptionCount(t *testing.T) {
	pool := testPool()
	rng := rand.New(rand.NewSource(11))

	q := BuildQuestion(pool[2], pool, ModeCharToMeaning, 2, rng)

	assert.Len(t, q.Options, 3, "1 correct + 2 distractors")
	assert.Contains(t, q.Options, q.CorrectAnswer)
	assert.Equal(t, "fish", q.CorrectAnswer)
	assert.Equal(t, "鱼", q.Prompt)
}

func TestBuildQuestionNoDuplicateOptions(t *testing.T) {
	pool := testPool()
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 50; trial++ {
		q := BuildQuestion(pool[0], pool, ModeMeaningToChar, 2, rng)
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestBuildQuestionExcludesConfusableMeanings(t *testing.T) {
	pool := testPool()
	rng := rand.New(rand.NewSource(9))

	// cat and dog are in the same confusable group, so a cat question must
	// never offer dog as a distractor
	for trial := 0; trial < 50; trial++ {
		q := BuildQuestion(pool[0], pool, ModeCharToMeaning, 2, rng)
		assert.NotContains(t, q.Options, "dog")
	}
}

func TestBuildQuestionModes(t *testing.T) {
	pool := testPool()
	rng := rand.New(rand.NewSource(2))

	q := BuildQuestion(pool[1], pool, ModeMeaningToChar, 2, rng)
	assert.Equal(t, "dog", q.Prompt)
	assert.Equal(t, "狗", q.CorrectAnswer)

	q = BuildQuestion(pool[1], pool, ModeCharToImage, 2, rng)
	assert.Equal(t, "狗", q.Prompt)
	assert.Equal(t, "/img/dog.png", q.CorrectAnswer)
}

func TestPickModeSkipsImageModeWithoutImage(t *testing.T) {
	item := models.Item{ID: 1, Label: "一", Meaning: "one"}
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		assert.NotEqual(t, ModeCharToImage, PickMode(item, rng))
	}
}

func TestMathGenerator(t *testing.T) {
	g := &MathGenerator{Age: 5}
	rng := rand.New(rand.NewSource(20))

	questions, err := g.Generate(5, rng)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	for _, q := range questions {
		assert.Len(t, q.Options, 3)
		assert.Contains(t, q.Options, q.CorrectAnswer)
		assert.NotEmpty(t, q.Prompt)

		n, err := strconv.Atoi(q.CorrectAnswer)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
	}
}

func TestMathGeneratorOlderChild(t *testing.T) {
	g := &MathGenerator{Age: 8}
	rng := rand.New(rand.NewSource(21))

	questions, err := g.Generate(20, rng)
	require.NoError(t, err)
	for _, q := range questions {
		assert.Contains(t, []string{"addition", "subtraction", "multiplication"}, q.Mode)
	}
}
