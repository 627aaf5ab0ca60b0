package main

import (
	"log"

	"github.com/roffe/speedgauge/cmd/gaugepng/cmd"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

func main() {
	cmd.Execute()
}
