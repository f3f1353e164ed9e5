package main

import "shophub_backend/internal/app"

func main() {
	app.Run()
}
