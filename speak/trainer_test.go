package speak_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sghaida/trainers/speak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quiet is a Speaker defined outside the speak package.
type quiet struct{ word string }

func (q quiet) Speak() string { return q.word }

//
// -----------------------------------------------------------------------------
// Trainers
// -----------------------------------------------------------------------------

// TestTrainers_SpeakAndPrint verifies every trainer returns its greeting and prints it followed by a newline.
func TestTrainers_SpeakAndPrint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		trainer speak.Trainer
		want    string
	}{
		{name: "enum dog", trainer: speak.EnumTrainer{Animal: speak.AnimalDog()}, want: "Woof!"},
		{name: "enum cat", trainer: speak.EnumTrainer{Animal: speak.AnimalCat()}, want: "Meow!"},
		{name: "generic dog", trainer: speak.GenericTrainer[speak.Dog]{Animal: speak.Dog{}}, want: "Woof!"},
		{name: "generic cat", trainer: speak.GenericTrainer[speak.Cat]{Animal: speak.Cat{}}, want: "Meow!"},
		{name: "func dog", trainer: speak.FuncTrainer{SpeakFn: speak.DogSpeak}, want: "Woof!"},
		{name: "func cat", trainer: speak.FuncTrainer{SpeakFn: speak.CatSpeak}, want: "Meow!"},
		{name: "const 0", trainer: speak.ConstTrainer[speak.Tag0]{}, want: "Unknown animal"},
		{name: "const 1", trainer: speak.ConstTrainer[speak.Tag1]{}, want: "Meow!"},
		{name: "const 2", trainer: speak.ConstTrainer[speak.Tag2]{}, want: "Woof!"},
		{name: "const 3", trainer: speak.ConstTrainer[speak.Tag3]{}, want: "Unknown animal"},
		{name: "tag 1", trainer: speak.TagTrainer{Tag: 1}, want: "Meow!"},
		{name: "tag 7", trainer: speak.TagTrainer{Tag: 7}, want: "Unknown animal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.trainer.Speak())

			var buf bytes.Buffer
			tc.trainer.AskAnimalToSpeakTo(&buf)
			assert.Equal(t, tc.want+"\n", buf.String())
		})
	}
}

// TestGenericTrainer_MatchesDirectCall verifies the generic trainer returns what the held value returns.
func TestGenericTrainer_MatchesDirectCall(t *testing.T) {
	t.Parallel()

	cat := speak.Cat{}
	tr := speak.GenericTrainer[speak.Cat]{Animal: cat}
	assert.Equal(t, cat.Speak(), tr.Speak())

	custom := speak.GenericTrainer[quiet]{Animal: quiet{word: "..."}}
	assert.Equal(t, "...", custom.Speak())
}

// TestMakeAnimalSpeakHelpers verifies the free print helpers write one line each.
func TestMakeAnimalSpeakHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	speak.MakeAnimalSpeak(&buf, speak.Dog{})
	speak.MakeAnimalSpeakFn(&buf, speak.CatSpeak)

	assert.Equal(t, "Woof!\nMeow!\n", buf.String())
}

// TestFuncTrainer_NilFuncPanics verifies a trainer without a function panics when asked to speak.
func TestFuncTrainer_NilFuncPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _ = speak.FuncTrainer{}.Speak() })
}

//
// -----------------------------------------------------------------------------
// Demo / Run
// -----------------------------------------------------------------------------

// TestDemo_SixLinesInOrder verifies Demo writes the six greetings in order.
func TestDemo_SixLinesInOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	speak.Demo(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"Woof!", "Meow!", "Meow!", "Woof!", "Meow!", "Meow!"}, lines)
}

// TestRun_MatchesDemoForDemoRoster verifies the demo roster built at run time prints exactly what Demo prints.
func TestRun_MatchesDemoForDemoRoster(t *testing.T) {
	t.Parallel()

	trainers, err := speak.BuildAll(speak.DemoRoster(), speak.DefaultRegistry())
	require.NoError(t, err)

	var got, want bytes.Buffer
	speak.Run(&got, trainers)
	speak.Demo(&want)

	assert.Equal(t, want.String(), got.String())
}
