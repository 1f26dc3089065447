package main

import "github.com/wikigeo/onthisday/internal/cli"

func main() {
	cli.Execute()
}
