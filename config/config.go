package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// Rallyエクスポート（stories.csv, tasks.csv, iterations.csv）のディレクトリ
	ExportPath string
	// ユーザーマッピング YAML
	UserConfigPath string
	// 出力ファイル名（ExportPath 配下に作成）
	PivotalCSV string

	// 詳細ログ
	Verbose bool
}

// ファイル名
const (
	StoriesFile    = "stories.csv"
	TasksFile      = "tasks.csv"
	IterationsFile = "iterations.csv"
)

// LoadConfig は環境変数から設定を読み込みます
func LoadConfig() (*Config, error) {
	// .envファイルを読み込む
	_ = godotenv.Load()

	config := &Config{
		ExportPath:     getEnvWithDefault("RALLY_EXPORT_PATH", "."),
		UserConfigPath: getEnvWithDefault("USER_CONFIG_PATH", "user_config.yml"),
		PivotalCSV:     getEnvWithDefault("PIVOTAL_CSV", "pivotal_stories.csv"),
		Verbose:        getEnvAsBoolWithDefault("VERBOSE", false),
	}

	return config, nil
}

// デフォルト値付きで環境変数を取得
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// デフォルト値付きで環境変数を真偽値として取得
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
