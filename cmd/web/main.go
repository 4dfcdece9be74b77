package main

import "gastropass_backend/internal/app"

func main() {
	app.Run()
}
