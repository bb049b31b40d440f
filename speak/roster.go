package speak

import (
	"errors"
	"strconv"
)

// Dispatch names a trainer kind in a roster.
type Dispatch string

const (
	DispatchEnum    Dispatch = "enum"
	DispatchGeneric Dispatch = "generic"
	DispatchFunc    Dispatch = "func"
	DispatchConst   Dispatch = "const"
)

// ErrNilRegistry is returned when a func entry is built without a registry.
var ErrNilRegistry = errors.New("speak: nil registry")

// UnknownDispatchError is returned for a dispatch name outside the four kinds.
type UnknownDispatchError struct{ Dispatch Dispatch }

// Error implements the error interface.
func (e UnknownDispatchError) Error() string {
	// Example: speak: unknown dispatch "virtual"
	return "speak: unknown dispatch " + strconv.Quote(string(e.Dispatch))
}

// UnknownAnimalError is returned when an entry names an animal that the
// chosen dispatch cannot produce.
type UnknownAnimalError struct {
	Dispatch Dispatch
	Animal   string
}

// Error implements the error interface.
func (e UnknownAnimalError) Error() string {
	// Example: speak: unknown animal "cow" for dispatch "enum"
	return "speak: unknown animal " + strconv.Quote(e.Animal) +
		" for dispatch " + strconv.Quote(string(e.Dispatch))
}

// Entry describes one trainer in a roster.
//
// Animal is used by enum, generic and func entries. Tag is used by const
// entries; any value is accepted and unmapped values speak UnknownAnimal.
type Entry struct {
	Dispatch Dispatch `mapstructure:"dispatch" yaml:"dispatch"`
	Animal   string   `mapstructure:"animal" yaml:"animal,omitempty"`
	Tag      int      `mapstructure:"tag" yaml:"tag,omitempty"`
}

// DemoRoster is the fixed entry sequence as data.
func DemoRoster() []Entry {
	return []Entry{
		{Dispatch: DispatchEnum, Animal: NameDog},
		{Dispatch: DispatchEnum, Animal: NameCat},
		{Dispatch: DispatchGeneric, Animal: NameCat},
		{Dispatch: DispatchFunc, Animal: NameDog},
		{Dispatch: DispatchFunc, Animal: NameCat},
		{Dispatch: DispatchConst, Tag: TagCat},
	}
}

// Build turns an entry into a Trainer. reg resolves func entries.
func Build(e Entry, reg *Registry) (Trainer, error) {
	switch e.Dispatch {
	case DispatchEnum:
		switch e.Animal {
		case NameDog:
			return EnumTrainer{Animal: AnimalDog()}, nil
		case NameCat:
			return EnumTrainer{Animal: AnimalCat()}, nil
		}
	case DispatchGeneric:
		switch e.Animal {
		case NameDog:
			return GenericTrainer[Dog]{Animal: Dog{}}, nil
		case NameCat:
			return GenericTrainer[Cat]{Animal: Cat{}}, nil
		}
	case DispatchFunc:
		if reg == nil {
			return nil, ErrNilRegistry
		}
		if fn, ok := reg.Get(e.Animal); ok && fn != nil {
			return FuncTrainer{SpeakFn: fn}, nil
		}
	case DispatchConst:
		return TagTrainer{Tag: e.Tag}, nil
	default:
		return nil, UnknownDispatchError{Dispatch: e.Dispatch}
	}
	return nil, UnknownAnimalError{Dispatch: e.Dispatch, Animal: e.Animal}
}

// BuildAll builds every entry in order and stops at the first error.
func BuildAll(entries []Entry, reg *Registry) ([]Trainer, error) {
	out := make([]Trainer, 0, len(entries))
	for _, e := range entries {
		t, err := Build(e, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
