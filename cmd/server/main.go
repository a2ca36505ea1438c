package main

import (
	"log"

	_ "smarttask/docs"
	"smarttask/internal/config"
	"smarttask/internal/server"
)

// @title           Smart Task Manager API
// @version         1.0
// @description     API for managing tasks with AI-suggested priorities.

// @host      localhost:4000
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
