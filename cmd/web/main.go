// @title           WorkHub API
// @version         1.0
// @description     API биржи задач: клиенты, исполнители, отклики, отзывы и подбор исполнителей.
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "workhub_backend/internal/logger"

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Command failed", "error", err)
	}
}
