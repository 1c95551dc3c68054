package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"rallytopivotal/config"
	"rallytopivotal/models"
	"rallytopivotal/utils"
)

// Kind はRallyエクスポートのデータ種別です
type Kind string

const (
	KindStory     Kind = "story"
	KindTask      Kind = "task"
	KindIteration Kind = "iteration"
)

// RecordReader はCSVファイルをレコードとして読み込みます
type RecordReader interface {
	ReadCSV(filePath string) ([]models.CSVRecord, error)
}

// Store はRallyのストーリー・タスク・イテレーションを読み込み順に保持します
// 件数は数百程度なので検索は線形探索で行います
type Store struct {
	reader     RecordReader
	stories    []*models.RallyStory
	tasks      []models.CSVRecord
	iterations []models.CSVRecord
}

// NewStore は空のストアを作成します
func NewStore(reader RecordReader) *Store {
	return &Store{reader: reader}
}

// Stories は読み込まれたストーリーを返します
func (s *Store) Stories() []*models.RallyStory { return s.stories }

// Tasks は読み込まれたタスクを返します
func (s *Store) Tasks() []models.CSVRecord { return s.tasks }

// Iterations は読み込まれたイテレーションを返します
func (s *Store) Iterations() []models.CSVRecord { return s.iterations }

// LoadExportPath はエクスポートディレクトリから3つのCSVを読み込みます
func (s *Store) LoadExportPath(dir string) error {
	utils.LogDebug("export_path: %s", dir)

	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("export_path %w: %s", ErrSourceNotFound, dir)
		}
		return fmt.Errorf("export_path 確認エラー: %w", err)
	}

	if err := s.LoadFile(KindStory, filepath.Join(dir, config.StoriesFile)); err != nil {
		return err
	}
	if err := s.LoadFile(KindTask, filepath.Join(dir, config.TasksFile)); err != nil {
		return err
	}
	return s.LoadFile(KindIteration, filepath.Join(dir, config.IterationsFile))
}

// LoadFile はCSVファイルを読み込み、指定された種別として追加します
func (s *Store) LoadFile(kind Kind, path string) error {
	records, err := s.reader.ReadCSV(path)
	if err != nil {
		return fmt.Errorf("%s ファイルの読み込みに失敗しました。パスを確認してください: %w", kind, err)
	}

	added := s.Load(kind, records)
	utils.LogInfo("%s を読み込みました: %d 行中 %d 件を追加 (%s)", kind, len(records), added, path)
	return nil
}

// Load はレコードを追加し、実際に追加された件数を返します
// 既に存在するキーのレコードは無視されるため、同じデータを何度読み込んでも結果は変わりません
func (s *Store) Load(kind Kind, records []models.CSVRecord) int {
	added := 0
	for _, record := range records {
		var ok bool
		switch kind {
		case KindStory:
			ok = s.AddStory(record)
		case KindTask:
			ok = s.AddTask(record)
		case KindIteration:
			ok = s.AddIteration(record)
		}
		if ok {
			added++
		}
	}
	return added
}

// AddStory はストーリーを追加します。Formatted IDが重複する場合は何もしません
func (s *Store) AddStory(record models.CSVRecord) bool {
	if s.FindStory(record["Formatted ID"]) != nil {
		return false
	}
	s.stories = append(s.stories, &models.RallyStory{Record: record})
	return true
}

// AddTask はタスクを追加し、Work ProductからFormatted Story IDを設定します
func (s *Store) AddTask(record models.CSVRecord) bool {
	if s.FindTask(record["Formatted ID"]) != nil {
		return false
	}

	if workProduct, ok := record["Work Product"]; ok {
		storyID, _, _ := strings.Cut(workProduct, ":")
		record["Formatted Story ID"] = storyID
	}
	s.tasks = append(s.tasks, record)
	return true
}

// AddIteration はイテレーションを追加します。Nameが重複する場合は何もしません
func (s *Store) AddIteration(record models.CSVRecord) bool {
	if s.FindIteration(record["Name"]) != nil {
		return false
	}
	s.iterations = append(s.iterations, record)
	return true
}

// FindStory はFormatted IDでストーリーを検索します
func (s *Store) FindStory(id string) *models.RallyStory {
	for _, story := range s.stories {
		if story.ID() == id {
			return story
		}
	}
	return nil
}

// FindTask はFormatted IDでタスクを検索します
func (s *Store) FindTask(id string) models.CSVRecord {
	return findRecord(s.tasks, "Formatted ID", id)
}

// FindIteration は名前でイテレーションを検索します
func (s *Store) FindIteration(name string) models.CSVRecord {
	return findRecord(s.iterations, "Name", name)
}

func findRecord(records []models.CSVRecord, key, value string) models.CSVRecord {
	for _, r := range records {
		if r[key] == value {
			return r
		}
	}
	return nil
}

// FindTasksByStoryID はストーリーに属するタスクを読み込み順に返します
func (s *Store) FindTasksByStoryID(storyID string) []models.CSVRecord {
	var tasks []models.CSVRecord
	for _, t := range s.tasks {
		if id, ok := t["Formatted Story ID"]; ok && id == storyID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// AttachTasksToStories は各ストーリーにタスクを紐付けます（既存の紐付けは置き換えます）
func (s *Store) AttachTasksToStories() {
	for _, story := range s.stories {
		story.Tasks = s.FindTasksByStoryID(story.ID())
	}
}

// ResetStories はストーリーを空にします
func (s *Store) ResetStories() { s.stories = nil }

// ResetTasks はタスクを空にします
func (s *Store) ResetTasks() { s.tasks = nil }

// ResetIterations はイテレーションを空にします
func (s *Store) ResetIterations() { s.iterations = nil }

// checkLoaded は3種類のデータがすべて読み込まれているか確認します
func (s *Store) checkLoaded() error {
	var errs []error
	if len(s.stories) == 0 {
		errs = append(errs, fmt.Errorf("%s: %w", KindStory, ErrNotLoaded))
	}
	if len(s.tasks) == 0 {
		errs = append(errs, fmt.Errorf("%s: %w", KindTask, ErrNotLoaded))
	}
	if len(s.iterations) == 0 {
		errs = append(errs, fmt.Errorf("%s: %w", KindIteration, ErrNotLoaded))
	}
	return errors.Join(errs...)
}
