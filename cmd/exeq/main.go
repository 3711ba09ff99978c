// Command exeq manages remote browser sessions from the terminal.
package main

import "github.com/exeq-dev/exeq-go/internal/cli"

func main() {
	cli.Main()
}
