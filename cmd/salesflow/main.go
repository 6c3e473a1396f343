package main

import "brasilup/salesflow/internal/app"

func main() {
	app.Run()
}
