package main

import (
	"os"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	a := &app{}
	defer a.close()
	return newRootCmd(a).Execute()
}
