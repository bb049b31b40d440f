package speak

import (
	"fmt"
	"io"
	"os"
)

// Trainer asks its animal to speak.
//
// AskAnimalToSpeak writes the greeting and a newline to standard output.
// AskAnimalToSpeakTo does the same against w. Write errors are ignored; a
// trainer has no failure mode.
type Trainer interface {
	Speak() string
	AskAnimalToSpeak()
	AskAnimalToSpeakTo(w io.Writer)
}

var (
	_ Trainer = EnumTrainer{}
	_ Trainer = GenericTrainer[Cat]{}
	_ Trainer = FuncTrainer{}
	_ Trainer = ConstTrainer[Tag1]{}
	_ Trainer = TagTrainer{}
)

func say(w io.Writer, greeting string) {
	_, _ = fmt.Fprintln(w, greeting)
}

/*
Closed-set union
*/

// EnumTrainer dispatches through the Animal union.
type EnumTrainer struct {
	Animal Animal
}

// Speak implements Trainer.
func (t EnumTrainer) Speak() string { return SpeakAnimal(t.Animal) }

// AskAnimalToSpeak implements Trainer.
func (t EnumTrainer) AskAnimalToSpeak() { t.AskAnimalToSpeakTo(os.Stdout) }

// AskAnimalToSpeakTo implements Trainer.
func (t EnumTrainer) AskAnimalToSpeakTo(w io.Writer) { say(w, t.Speak()) }

/*
Generic with a Speaker bound
*/

// GenericTrainer holds one value of a type fixed at compile time.
type GenericTrainer[T Speaker] struct {
	Animal T
}

// MakeAnimalSpeak prints the greeting of any Speaker. The call is resolved
// per instantiation; there is no runtime type inspection.
func MakeAnimalSpeak[T Speaker](w io.Writer, animal T) {
	say(w, animal.Speak())
}

// Speak implements Trainer.
func (t GenericTrainer[T]) Speak() string { return t.Animal.Speak() }

// AskAnimalToSpeak implements Trainer.
func (t GenericTrainer[T]) AskAnimalToSpeak() { t.AskAnimalToSpeakTo(os.Stdout) }

// AskAnimalToSpeakTo implements Trainer.
func (t GenericTrainer[T]) AskAnimalToSpeakTo(w io.Writer) { MakeAnimalSpeak(w, t.Animal) }

/*
Function reference
*/

// FuncTrainer holds a reference to a greeting function.
//
// SpeakFn should be a plain function such as DogSpeak or CatSpeak. A nil
// SpeakFn panics on use like any nil func call.
type FuncTrainer struct {
	SpeakFn SpeakFunc
}

// MakeAnimalSpeakFn prints the result of fn.
func MakeAnimalSpeakFn(w io.Writer, fn SpeakFunc) {
	say(w, fn())
}

// Speak implements Trainer.
func (t FuncTrainer) Speak() string { return t.SpeakFn() }

// AskAnimalToSpeak implements Trainer.
func (t FuncTrainer) AskAnimalToSpeak() { t.AskAnimalToSpeakTo(os.Stdout) }

// AskAnimalToSpeakTo implements Trainer.
func (t FuncTrainer) AskAnimalToSpeakTo(w io.Writer) { MakeAnimalSpeakFn(w, t.SpeakFn) }

/*
Build-time constant
*/

// ConstTrainer carries no fields; its constant is the tag type argument.
//
//	var t speak.ConstTrainer[speak.Tag1] // Meow!
type ConstTrainer[N Tag] struct{}

// Speak implements Trainer.
func (ConstTrainer[N]) Speak() string { return Behavior[N]() }

// AskAnimalToSpeak implements Trainer.
func (t ConstTrainer[N]) AskAnimalToSpeak() { t.AskAnimalToSpeakTo(os.Stdout) }

// AskAnimalToSpeakTo implements Trainer.
func (t ConstTrainer[N]) AskAnimalToSpeakTo(w io.Writer) { say(w, t.Speak()) }

// TagTrainer is the runtime form of ConstTrainer: the tag is a field read
// at call time instead of a type argument.
type TagTrainer struct {
	Tag int
}

// Speak implements Trainer.
func (t TagTrainer) Speak() string { return BehaviorOf(t.Tag) }

// AskAnimalToSpeak implements Trainer.
func (t TagTrainer) AskAnimalToSpeak() { t.AskAnimalToSpeakTo(os.Stdout) }

// AskAnimalToSpeakTo implements Trainer.
func (t TagTrainer) AskAnimalToSpeakTo(w io.Writer) { say(w, t.Speak()) }
