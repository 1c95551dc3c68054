package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"rallytopivotal/config"
	"rallytopivotal/services"
	"rallytopivotal/utils"
)

func main() {
	// コマンドラインフラグの定義
	userConfigPath := flag.StringP("user_config_path", "u", "", "ユーザーマッピングYAMLファイルのパス（指定しない場合は環境変数から取得）")
	exportPath := flag.StringP("export_path", "e", "", "Rallyからエクスポートしたstories.csv, tasks.csv, iterations.csvのディレクトリ")
	output := flag.StringP("output", "o", "", "出力するPivotal CSVのファイル名（エクスポートディレクトリ内に作成）")
	verbose := flag.BoolP("verbose", "v", false, "詳細ログを出力する")
	help := flag.BoolP("help", "h", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	utils.LogInfo("Rally CSV → Pivotal Tracker CSV 変換ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインで指定された場合、設定を上書き
	if *userConfigPath != "" {
		cfg.UserConfigPath = *userConfigPath
	}
	if *exportPath != "" {
		cfg.ExportPath = *exportPath
	}
	if *output != "" {
		cfg.PivotalCSV = *output
	}
	if *verbose {
		cfg.Verbose = true
	}
	utils.SetVerbose(cfg.Verbose)

	utils.LogDebug("user_config: %s, export_path: %s", cfg.UserConfigPath, cfg.ExportPath)

	csvProc := services.NewCSVProcessor(cfg)
	migrationService := services.NewMigrationService(cfg, csvProc)

	if err := migrationService.RunMigration(); err != nil {
		utils.LogError("変換に失敗しました: %v", err)
		os.Exit(1)
	}

	utils.LogInfo("変換が完了しました: %s", csvProc.OutputPath())
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
Rally CSV → Pivotal Tracker CSV 変換ツール

使用方法:
  %s [オプション]

オプション:
  -u, --user_config_path パス   ユーザーマッピングYAMLファイル (デフォルト: ./user_config.yml)
  -e, --export_path パス        Rallyエクスポートのディレクトリ (デフォルト: カレントディレクトリ)
  -o, --output ファイル名        出力ファイル名 (デフォルト: pivotal_stories.csv)
  -v, --verbose                 詳細ログを出力する
  -h, --help                    このヘルプを表示する

環境変数:
  RALLY_EXPORT_PATH   Rallyエクスポートのディレクトリ
  USER_CONFIG_PATH    ユーザーマッピングYAMLファイルのパス
  PIVOTAL_CSV         出力ファイル名
  VERBOSE             true で詳細ログを出力する

ユーザーマッピングの例:
  - rally_name: heppy
    pivotal_name: Peppy Heppy
    pivotal_initials: PH

説明:
  エクスポートディレクトリの stories.csv, tasks.csv, iterations.csv を読み込み、
  タスクとイテレーション期間を付与したPivotal Tracker用CSVを同じディレクトリに作成します。
`, os.Args[0])
}
