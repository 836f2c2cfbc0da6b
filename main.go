// @title Elevate Awards API
// @version 1.0
// @description Peer-recognition award voting: nominations, tallies, leaderboards and statistics

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/alex-pricope/elevate-awards/docs"

	"github.com/alex-pricope/elevate-awards/api"
	"github.com/alex-pricope/elevate-awards/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()
	_ = viper.BindEnv("server.AdminToken", "ADMIN_TOKEN")
	_ = viper.BindEnv("storage.SQLDSN", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()
	logging.SetLevel(config.LogLevel)

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
