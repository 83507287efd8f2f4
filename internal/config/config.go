package config

import "github.com/spf13/viper"

// Config holds all runtime settings for the GutCheck API. It is built once
// at startup and passed by reference to whatever needs it; nothing reads the
// environment after Load returns.
type Config struct {
	AppPort     string
	DatabaseDSN string
	JWTSecret   string

	// BaseURL is the externally reachable address of this server, used to
	// build image URLs when the local storage backend is selected.
	BaseURL        string
	UploadDir      string
	StorageBackend string // "local" or "s3"

	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3PublicBaseURL string

	// RabbitMQURL enables the activity event publisher when non-empty.
	RabbitMQURL string

	MaxUploadBytes int64
	MaxUploadFiles int
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=gutcheck port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("BASE_URL", "http://localhost:5000")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("STORAGE_BACKEND", "local")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_BUCKET", "gutcheck")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(100*1024*1024)) // per file
	viper.SetDefault("MAX_UPLOAD_FILES", 10)
	viper.AutomaticEnv()

	return &Config{
		AppPort:         viper.GetString("APP_PORT"),
		DatabaseDSN:     viper.GetString("DATABASE_DSN"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		BaseURL:         viper.GetString("BASE_URL"),
		UploadDir:       viper.GetString("UPLOAD_DIR"),
		StorageBackend:  viper.GetString("STORAGE_BACKEND"),
		S3AccessKey:     viper.GetString("S3_ACCESS_KEY"),
		S3SecretKey:     viper.GetString("S3_SECRET_KEY"),
		S3Bucket:        viper.GetString("S3_BUCKET"),
		S3Region:        viper.GetString("S3_REGION"),
		S3Endpoint:      viper.GetString("S3_ENDPOINT"),
		S3PublicBaseURL: viper.GetString("S3_PUBLIC_BASE_URL"),
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
		MaxUploadBytes:  viper.GetInt64("MAX_UPLOAD_BYTES"),
		MaxUploadFiles:  viper.GetInt("MAX_UPLOAD_FILES"),
	}
}
