package main

import "catalogo/cmd/catalogctl/commands"

func main() {
	commands.Execute()
}
