package speak

import (
	"errors"
	"fmt"
)

// ErrImpossibleCase is the panic value raised by SpeakAnimal when the union
// holds neither case, which only a nil Animal or a nil case pointer can do.
var ErrImpossibleCase = errors.New("speak: impossible animal case")

// Animal is a closed set of two cases: DogCase and CatCase.
//
// The marker method is unexported, so no package outside speak can add a
// case. The tag is the dynamic type and the payload is the embedded variant;
// they cannot disagree. *DogCase and *CatCase are the same two cases.
type Animal interface {
	isAnimal()
}

// DogCase holds the dog-like variant.
type DogCase struct{ Dog Dog }

// CatCase holds the cat-like variant.
type CatCase struct{ Cat Cat }

func (DogCase) isAnimal() {}
func (CatCase) isAnimal() {}

// AnimalDog returns the dog case of the union.
func AnimalDog() Animal { return DogCase{} }

// AnimalCat returns the cat case of the union.
func AnimalCat() Animal { return CatCase{} }

// SpeakAnimal delegates to the variant held by a.
func SpeakAnimal(a Animal) string {
	switch v := a.(type) {
	case DogCase:
		return v.Dog.Speak()
	case CatCase:
		return v.Cat.Speak()
	case *DogCase:
		if v != nil {
			return v.Dog.Speak()
		}
	case *CatCase:
		if v != nil {
			return v.Cat.Speak()
		}
	}
	panic(fmt.Errorf("%w: %T", ErrImpossibleCase, a))
}
