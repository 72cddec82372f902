package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RewardConfig struct {
	Env           string `yaml:"env"`
	RewardDB      `yaml:"reward_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Scheduler     `yaml:"scheduler"`
	MetricsServer `yaml:"metrics_server"`
}

type RewardDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"reward-events"`
}

type Scheduler struct {
	DistributionCronSpec string `yaml:"distribution_cron_spec" env-default:"0 0 * * *"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func MustLoad() *RewardConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REWARD_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REWARD_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RewardConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
