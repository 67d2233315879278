package main

import "github.com/nfrund/marksweb/cmd/marksctl/cmd"

func main() {
	cmd.Execute()
}
