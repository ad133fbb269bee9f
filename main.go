package main

import (
	"github.com/Sudharson1234/emotionv2/cmd"
)

func main() {
	cmd.Execute()
}
