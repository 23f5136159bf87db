package main

import "github.com/Skpow1234/oxilauncher/internal/cli"

func main() {
	cli.Execute()
}
