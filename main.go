package main

import (
	"interview-planner/core/logger"
	"interview-planner/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
