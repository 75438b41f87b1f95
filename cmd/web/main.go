package main

import "resumebuilder_backend/internal/app"

func main() {
	app.Run()
}
