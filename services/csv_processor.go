package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"rallytopivotal/config"
	"rallytopivotal/models"
	"rallytopivotal/utils"
)

// 進捗を表示する行数の間隔
const progressInterval = 25

// CSVProcessor はCSVファイルの読み書きを担当します
type CSVProcessor struct {
	config *config.Config
}

// NewCSVProcessor は新しいCSVプロセッサーを作成します
func NewCSVProcessor(cfg *config.Config) *CSVProcessor {
	return &CSVProcessor{
		config: cfg,
	}
}

// ReadCSV はヘッダー付きCSVを読み込みます。空行はスキップします
func (p *CSVProcessor) ReadCSV(filePath string) ([]models.CSVRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, filePath)
		}
		return nil, fmt.Errorf("CSVオープンエラー: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV読み込みエラー (%s): %w", filePath, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("ヘッダー行がありません: %s", filePath)
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	result := make([]models.CSVRecord, 0, len(records)-1)
	for i, record := range records[1:] {
		if isBlankRow(record) {
			utils.LogDebug("行 %d: 空行をスキップします", i+2)
			continue
		}

		rowData := make(models.CSVRecord)
		for j := 0; j < min(len(headers), len(record)); j++ {
			rowData[headers[j]] = record[j]
		}
		result = append(result, rowData)
	}

	return result, nil
}

// isBlankRow はすべてのセルが空の行かどうかを返します
func isBlankRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// OutputPath は出力するPivotal CSVのパスを返します
func (p *CSVProcessor) OutputPath() string {
	return filepath.Join(p.config.ExportPath, p.config.PivotalCSV)
}

// WritePivotalCSV はPivotal Tracker用のCSVを作成します
// ファイルは一時ファイル経由で置き換えるため、途中で失敗しても既存の出力は壊れません
func (p *CSVProcessor) WritePivotalCSV(header []string, rows [][]string) error {
	filePath := p.OutputPath()
	utils.LogDebug("Pivotal CSVファイル '%s' を作成します", filePath)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("ヘッダー書き込みエラー: %w", err)
	}

	count := 0
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("行書き込みエラー: %w", err)
		}
		count++
		if count%progressInterval == 0 {
			utils.LogInfo("%d 件のストーリーを書き込みました", count)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV書き込み完了エラー: %w", err)
	}

	if err := atomic.WriteFile(filePath, &buf); err != nil {
		return fmt.Errorf("CSVファイル作成エラー: %w", err)
	}

	utils.LogInfo("CSV書き込み完了: %d 件のストーリー", count)
	return nil
}
