package main

import "srms/internal/app/server"

func main() {
	server.Run()
}
