package main

import "github.com/permaudit-project/permaudit/internal/cli"

func main() {
	cli.Execute()
}
