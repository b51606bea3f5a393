package main

import "github.com/Digital-Shane/show-scout/internal/cmd"

func main() {
	cmd.Execute()
}
