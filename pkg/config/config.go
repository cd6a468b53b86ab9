package config

import "os"

type Config struct {
	Port          string
	Env           string
	MongoURI      string
	DatabaseName  string
	SessionSecret string
	CloudinaryURL string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", ""),
		DatabaseName:  getEnv("MONGO_DATABASE", "miniblog"),
		SessionSecret: getEnv("SESSION_SECRET", "supersecretsessionkey"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
