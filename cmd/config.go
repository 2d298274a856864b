package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	SeedOnStart            bool
	KafkaBrokers           []string
	KafkaOrderChangedTopic string
	OpenAIAPIKey           string
	OpenAIModel            string
	SheetsWebhookURL       string
	InboundCSVURL          string
	DefaultCarrierID       string
	DefaultTruckID         string
	SheetsSyncSchedule     string
	InboundImportSchedule  string
}

// LoadConfig reads the environment, after loading .env when one exists.
// Variables already set in the environment win over the file.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("http_port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "logistics")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("seed_on_start", true)
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_order_changed_topic", "order.changed")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("sheets_webhook_url", "")
	v.SetDefault("inbound_csv_url", "")
	v.SetDefault("default_carrier_id", "car2")
	v.SetDefault("default_truck_id", "T-01")
	v.SetDefault("sheets_sync_schedule", "0 */15 * * * *")
	v.SetDefault("inbound_import_schedule", "0 0 * * * *")
	v.AutomaticEnv()

	return Config{
		HTTPPort:               v.GetString("http_port"),
		DBHost:                 v.GetString("db_host"),
		DBPort:                 v.GetString("db_port"),
		DBUser:                 v.GetString("db_user"),
		DBPassword:             v.GetString("db_password"),
		DBName:                 v.GetString("db_name"),
		DBSslMode:              v.GetString("db_sslmode"),
		SeedOnStart:            v.GetBool("seed_on_start"),
		KafkaBrokers:           splitList(v.GetString("kafka_brokers")),
		KafkaOrderChangedTopic: v.GetString("kafka_order_changed_topic"),
		OpenAIAPIKey:           v.GetString("openai_api_key"),
		OpenAIModel:            v.GetString("openai_model"),
		SheetsWebhookURL:       v.GetString("sheets_webhook_url"),
		InboundCSVURL:          v.GetString("inbound_csv_url"),
		DefaultCarrierID:       v.GetString("default_carrier_id"),
		DefaultTruckID:         v.GetString("default_truck_id"),
		SheetsSyncSchedule:     v.GetString("sheets_sync_schedule"),
		InboundImportSchedule:  v.GetString("inbound_import_schedule"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
