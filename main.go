package main

import (
	"github.com/casalista/backend/cmd/app"
)

func main() {
	app.Run()
}
