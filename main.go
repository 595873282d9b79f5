package main

import (
	"github.com/notargets/stlgrid/cmd"
)

func main() {
	cmd.Execute()
}
