package main

import "github.com/daybudget/daybudget/internal/cli"

func main() {
	cli.Execute()
}
