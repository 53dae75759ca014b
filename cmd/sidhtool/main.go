package main

import (
	"github.com/adtrdlvm/c-sike/internal/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
