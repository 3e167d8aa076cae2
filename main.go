package main

import "github.com/fakeyudi/lemonade/cmd"

func main() {
	cmd.Execute()
}
