package api

import (
	"sync"

	"github.com/alex-pricope/elevate-awards/awards"
	"github.com/alex-pricope/elevate-awards/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	AwardsConfig
}

type StorageConfig struct {
	// Backend is one of memory, dynamo, postgres or sqlite.
	Backend               string
	DynamoEndpoint        string
	TableNameVotes        string
	TableNameVotingPeriod string
	SQLDSN                string
}

type ServerConfig struct {
	Port       int
	AdminToken string
	LogLevel   string
}

type AwardsConfig struct {
	Categories []awards.AwardCategory
	SeedVotes  bool
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:               getStringOrDefault("storage.Backend", "memory"),
			DynamoEndpoint:        viper.GetString("storage.DynamoEndpoint"),
			TableNameVotes:        getStringOrDefault("storage.TableNameVotes", "AwardVotes"),
			TableNameVotingPeriod: getStringOrDefault("storage.TableNameVotingPeriod", "AwardVotingPeriod"),
			SQLDSN:                viper.GetString("storage.SQLDSN"),
		},
		ServerConfig: ServerConfig{
			Port:       getIntOrDefault("server.port", 8080),
			AdminToken: viper.GetString("server.AdminToken"),
			LogLevel:   viper.GetString("server.LogLevel"),
		},
		AwardsConfig: AwardsConfig{
			Categories: readCategories(),
			SeedVotes:  getBoolOrDefault("awards.SeedVotes", false),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

// readCategories loads the catalog from awards.categories, falling back to the built-in awards.
func readCategories() []awards.AwardCategory {
	if !viper.IsSet("awards.categories") {
		logging.Log.Printf("could not find 'awards.categories' in viper! Using default catalog")
		return awards.DefaultCategories()
	}

	var categories []awards.AwardCategory
	if err := viper.UnmarshalKey("awards.categories", &categories); err != nil {
		logging.Log.Fatalf("invalid 'awards.categories': %v", err)
	}
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			logging.Log.Fatalf("award category %q has no id", c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			logging.Log.Fatalf("award category id %q is not unique", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	logging.Log.Printf("found %d award categories in viper", len(categories))
	return categories
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
