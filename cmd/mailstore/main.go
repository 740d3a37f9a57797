package main

import "github.com/vpetrenko/mailstore/internal/cli"

func main() {
	cli.Execute()
}
