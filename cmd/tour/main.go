package main

import "github.com/comalice/langtour/cmd/tour/cmd"

func main() {
	cmd.Execute()
}
