package main

import (
	"github.com/harlequix/hamenc/cmd"
)

func main() {
	cmd.Execute()
}
