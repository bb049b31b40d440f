// Package trainers demonstrates four ways to dispatch one capability in Go.
//
// A dog and a cat both speak. Four trainers ask them to, each through a
// different mechanism:
//
//   - closed-set union: a sealed interface with two cases and a type switch
//   - generic: a type parameter bounded by the Speaker interface
//   - function reference: a stored func() string
//   - build-time constant: a tag type argument indexing a fixed table
//
// Layout:
//   - speak: the library package (variants, union, trainers, tag table, registry)
//   - cmd/trainers: the binary; with no arguments it prints the six-line demo
//   - examples/*: one runnable example per dispatch style
//
// The ConstTrainer encodes its constant as a type because Go has no
// value-level type parameters. See the speak package doc for details.
package trainers
