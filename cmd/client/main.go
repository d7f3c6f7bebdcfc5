package main

import (
	"hostelmate/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
