package main

import "github.com/mvp-joe/interface-enum/internal/cli"

func main() {
	cli.Execute()
}
