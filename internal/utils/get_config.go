package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Telegram configuration
	TelegramBotToken      string `yaml:"TELEGRAM_BOT_TOKEN"`
	TelegramWebhookSecret string `yaml:"TELEGRAM_WEBHOOK_SECRET"`
	ChannelID             string `yaml:"CHANNEL_ID"`

	// OpenAI configuration
	OpenAIAPIKey string `yaml:"OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"OPENAI_MODEL"`

	// AWS S3 configuration (meal photo archive)
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Tracking constants
	DailyCalorieTarget int `yaml:"DAILY_CALORIE_TARGET"`
	DayBoundaryHour    int `yaml:"DAY_BOUNDARY_HOUR"`
	ProgressBarLength  int `yaml:"PROGRESS_BAR_LENGTH"`
	MinCalorieValue    int `yaml:"MIN_CALORIE_VALUE"`
	MaxCalorieValue    int `yaml:"MAX_CALORIE_VALUE"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys some libraries expect via os.Getenv
	os.Setenv("TELEGRAM_BOT_TOKEN", config.TelegramBotToken)
	os.Setenv("OPENAI_API_KEY", config.OpenAIAPIKey)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "TELEGRAM_BOT_TOKEN":
		return config.TelegramBotToken
	case "TELEGRAM_WEBHOOK_SECRET":
		return config.TelegramWebhookSecret
	case "CHANNEL_ID":
		return config.ChannelID
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_MODEL":
		return config.OpenAIModel
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetIntConfig reads a numeric key, falling back when the key is unset or
// zero. Environment variables override the YAML file so deployments can tune
// the tracking constants without shipping a new config file.
func GetIntConfig(key string, fallback int) int {
	if env := os.Getenv(key); env != "" {
		if v, err := strconv.Atoi(env); err == nil {
			return v
		}
	}

	var v int
	switch key {
	case "DAILY_CALORIE_TARGET":
		v = config.DailyCalorieTarget
	case "DAY_BOUNDARY_HOUR":
		v = config.DayBoundaryHour
	case "PROGRESS_BAR_LENGTH":
		v = config.ProgressBarLength
	case "MIN_CALORIE_VALUE":
		v = config.MinCalorieValue
	case "MAX_CALORIE_VALUE":
		v = config.MaxCalorieValue
	}
	if v == 0 {
		return fallback
	}
	return v
}
