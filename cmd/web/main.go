package main

import "github.com/sq23rd/roster-backend/internal/app"

func main() {
	app.Run()
}
