package services

import (
	"fmt"
	"time"

	"rallytopivotal/config"
	"rallytopivotal/utils"
)

// MigrationService はRallyのエクスポートをPivotal Tracker CSVに変換します
type MigrationService struct {
	config  *config.Config
	csvProc *CSVProcessor
}

// NewMigrationService は新しい移行サービスを作成します
func NewMigrationService(cfg *config.Config, csvProc *CSVProcessor) *MigrationService {
	return &MigrationService{
		config:  cfg,
		csvProc: csvProc,
	}
}

// RunMigration はユーザー設定とRallyエクスポートを読み込み、Pivotal CSVを書き出します
func (m *MigrationService) RunMigration() error {
	startTime := time.Now()
	defer utils.TrackTime(startTime, "Pivotal CSV変換")

	utils.LogInfo("ユーザー設定を読み込んでいます...")
	users, err := LoadUserMapping(m.config.UserConfigPath)
	if err != nil {
		return err
	}

	utils.LogInfo("ストーリー・タスク・イテレーションを読み込んでいます...")
	store := NewStore(m.csvProc)
	if err := store.LoadExportPath(m.config.ExportPath); err != nil {
		return err
	}

	utils.LogInfo("Pivotal Tracker形式に変換しています...")
	transformer := NewTransformer(users)
	stories, err := NewAssembler(transformer).BuildPivotalStories(store)
	if err != nil {
		return err
	}

	header, rows, err := BuildRows(stories, store, transformer)
	if err != nil {
		return fmt.Errorf("Pivotal CSVを作成できません: %w", err)
	}

	utils.LogInfo("書き込み先: %s", m.csvProc.OutputPath())
	if err := m.csvProc.WritePivotalCSV(header, rows); err != nil {
		return fmt.Errorf("Pivotal CSV書き込みエラー: %w", err)
	}

	return nil
}
