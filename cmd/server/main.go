package main

import (
	"log"
	"os"

	"github.com/jashwanth-cse/Dream-Destiny/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
