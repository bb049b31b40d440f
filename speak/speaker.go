package speak

// Greetings produced by the concrete variants.
const (
	Woof = "Woof!"
	Meow = "Meow!"

	// UnknownAnimal is reported for any tag outside the table.
	UnknownAnimal = "Unknown animal"
)

// Speaker is the capability every animal implements.
type Speaker interface {
	Speak() string
}

// Dog is the dog-like variant. It has no state.
type Dog struct{}

// Speak implements Speaker.
func (Dog) Speak() string { return Woof }

// Cat is the cat-like variant. It has no state.
type Cat struct{}

// Speak implements Speaker.
func (Cat) Speak() string { return Meow }

// SpeakFunc is a zero-argument greeting function.
type SpeakFunc func() string

// DogSpeak is the function-reference form of Dog.Speak.
func DogSpeak() string { return Woof }

// CatSpeak is the function-reference form of Cat.Speak.
func CatSpeak() string { return Meow }

var (
	_ Speaker = Dog{}
	_ Speaker = Cat{}
)
