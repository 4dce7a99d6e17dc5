package config

import "os"

// Config holds everything the server reads from the environment.
type Config struct {
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	CloudinaryURL string
	Port          string
	GinMode       string
}

func Load() Config {
	return Config{
		MongoURI:      getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:       getEnv("MONGODB_DB", "neighborly"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		Port:          getEnv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
