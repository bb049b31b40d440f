// Package speak shows four ways to route a single capability ("speak") to a
// concrete implementation.
//
// Every trainer wraps one dispatch mechanism and exposes the same operation:
// ask the animal to speak and print the greeting on its own line.
//
//   - EnumTrainer: closed-set union. Animal is a sealed interface with exactly
//     two cases (DogCase, CatCase); SpeakAnimal type-switches over them.
//   - GenericTrainer[T]: static dispatch bounded by the Speaker constraint.
//     A type that does not implement Speaker is rejected by the compiler.
//   - FuncTrainer: a stored func() string with no captured state.
//   - ConstTrainer[N]: a constant chosen at build time through a tag type
//     argument (Tag1, Tag2, ...). The constant indexes a fixed table.
//
// Go has no value-level type parameters, so ConstTrainer encodes the
// constant as a zero-size type. The constant itself is fixed when the
// program is built, but the table lookup runs at call time. TagTrainer is the
// fully runtime variant used when a roster is loaded from a file.
//
// The closed-set union cannot be checked for exhaustiveness by the compiler.
// SpeakAnimal accepts both cases by value or by pointer and panics with
// ErrImpossibleCase only for a nil Animal or a nil case pointer.
//
// Import
//
//	"github.com/sghaida/trainers/speak"
package speak
