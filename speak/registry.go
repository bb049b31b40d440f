package speak

import (
	"errors"
	"fmt"
	"sort"
)

// Registered animal names.
const (
	NameDog = "dog"
	NameCat = "cat"
)

// ErrRegistryPanic is returned if a registered function panics inside Resolve.
var ErrRegistryPanic = errors.New("speak: panic during Resolve")

// Registry maps animal names to greeting functions for the function-reference
// trainer. The zero value is not usable; call NewRegistry.
type Registry struct {
	items map[string]SpeakFunc
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]SpeakFunc{}}
}

// DefaultRegistry returns a registry holding DogSpeak and CatSpeak.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Provide(NameDog, DogSpeak).
		Provide(NameCat, CatSpeak)
}

// Provide stores fn under name and returns the registry for chaining.
func (r *Registry) Provide(name string, fn SpeakFunc) *Registry {
	r.items[name] = fn
	return r
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (SpeakFunc, bool) {
	fn, ok := r.items[name]
	return fn, ok
}

// MustGet returns the function or panics.
func (r *Registry) MustGet(name string) SpeakFunc {
	fn, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("speak: registry missing animal %q", name))
	}
	return fn
}

// Resolve calls the function registered under name and returns its greeting.
// A panic in the function is converted into ErrRegistryPanic.
func (r *Registry) Resolve(name string) (greeting string, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			greeting = ""
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	fn, ok := r.items[name]
	if !ok || fn == nil {
		return "", false, nil
	}
	return fn(), true, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
