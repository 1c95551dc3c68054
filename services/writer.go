package services

import (
	"fmt"
	"slices"
	"sort"

	"rallytopivotal/config"
	"rallytopivotal/models"
)

// StoryFinder はFormatted IDでストーリー（紐付け済みタスクを含む）を返します
type StoryFinder interface {
	FindStory(id string) *models.RallyStory
}

// BuildRows はPivotal CSVのヘッダーと行を作成します
//
// 各行はPivotalFieldsの順のカラムに続いて、タスクごとに "<イニシャル>: <タスク名>" と
// ステータスの2列を持ちます。ヘッダーは最大タスク数に合わせて広げ、行はIterationで安定ソートします
func BuildRows(stories []models.PivotalStory, store StoryFinder, transformer *Transformer) ([]string, [][]string, error) {
	rows := make([][]string, 0, len(stories))
	maxTaskCount := 0

	for _, story := range stories {
		row := make([]string, 0, len(config.PivotalFields))
		for _, field := range config.PivotalFields {
			row = append(row, story.Fields[field])
		}

		var tasks []models.CSVRecord
		if rally := store.FindStory(story.FormattedID); rally != nil {
			tasks = rally.Tasks
		}
		maxTaskCount = max(maxTaskCount, len(tasks))

		for _, task := range tasks {
			initials, ok := transformer.LookupInitials(task["Owner"])
			if !ok {
				return nil, nil, fmt.Errorf("%w: タスク %s の担当者 '%s'", ErrMissingUserMapping, task["Formatted ID"], task["Owner"])
			}
			row = append(row, fmt.Sprintf("%s: %s", initials, task["Name"]), TaskStatus(task["Scheduled State"]))
		}
		rows = append(rows, row)
	}

	header := slices.Clone(config.PivotalFields)
	for i := 0; i < maxTaskCount; i++ {
		header = append(header, config.TaskHeader...)
	}

	// タスクの少ない行は空のセルで埋める
	for i, row := range rows {
		if len(row) < len(header) {
			rows[i] = append(row, make([]string, len(header)-len(row))...)
		}
	}

	sortIndex := slices.Index(config.PivotalFields, config.SortField)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][sortIndex] < rows[j][sortIndex]
	})

	return header, rows, nil
}
