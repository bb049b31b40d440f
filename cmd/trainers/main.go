// Command trainers asks a dog and a cat to speak through four dispatch
// styles and prints one greeting per line.
//
// With no arguments it prints:
//
//	Woof!
//	Meow!
//	Meow!
//	Woof!
//	Meow!
//	Meow!
//
// See "trainers --help" for the roster and version subcommands.
package main

import "github.com/sghaida/trainers/internal/cli"

func main() {
	cli.Execute()
}
