package config

import "rallytopivotal/models"

// PivotalFields はPivotal Tracker CSVの出力カラム（順序どおり）です
var PivotalFields = []string{
	"Id", "Story", "Labels", "Iteration", "Iteration Start", "Iteration End",
	"Story Type", "Estimate", "Current State", "Created at", "Accepted at",
	"Deadline", "Requested By", "Owned By", "Description",
}

// BlankPivotalFields は出力するが常に空のままにするカラムです
var BlankPivotalFields = map[string]bool{
	"Id": true,
}

// FieldSynonyms は他のカラムの値を流用するカラムです
var FieldSynonyms = map[string]string{
	"Accepted at":  "Iteration End",
	"Deadline":     "Iteration End",
	"Requested By": "Owned By",
}

// AccumulatorSeparators は追記型カラムの区切り文字です
// Description の区切りは改行文字ではなく "\n" の2文字です
var AccumulatorSeparators = map[string]string{
	"Labels":      ",",
	"Description": `\n`,
}

// StateMapping はRallyのSchedule StateからPivotalのCurrent Stateへのマッピングです
var StateMapping = map[string]string{
	"Backlog":     "unscheduled",
	"Defined":     "unstarted",
	"In-Progress": "started",
	"Completed":   "delivered",
	"Accepted":    "accepted",
}

// EstimateBuckets はPivotalのポイント（昇順）です
var EstimateBuckets = []float64{1, 2, 3, 5, 8}

const (
	// IterationPrefix はイテレーション名から取り除く接頭辞です
	IterationPrefix = "Sprint "

	// 常に固定値で追加するストーリータイプ
	DefaultStoryType = "feature"

	// TaskCompletedState はタスク完了を表すRallyのScheduled Stateです
	TaskCompletedState = "Completed"

	// PivotalDateLayout は出力日付の形式です (例: 25-Dec-24)
	PivotalDateLayout = "02-Jan-06"

	// SortField は出力行の並び替えに使うカラムです
	SortField = "Iteration"

	// イテレーションのRally側カラム
	IterationStartField = "Start Date"
	IterationEndField   = "End Date"
)

// TaskHeader はタスク1件分のヘッダー列です
var TaskHeader = []string{"Task", "Task Status"}

// DateLayouts はRallyの日付として受け付ける形式です
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02-Jan-06",
}

// StoryFieldMap はRallyストーリーの各フィールドの変換ルールです（順序に意味があります）
var StoryFieldMap = []models.FieldRule{
	{Source: "Formatted ID", Kind: models.RuleAccumulate, Target: "Description"},
	{Source: "Name", Kind: models.RuleCopy, Target: "Story"},
	{Source: "Release", Kind: models.RuleAccumulate, Target: "Labels"},
	{Source: "Iteration", Kind: models.RuleTransform, Target: "Iteration", Transform: models.TransformIterationLabel},
	{Source: "Schedule State", Kind: models.RuleTransform, Target: "Current State", Transform: models.TransformState},
	{Source: "Plan Estimate", Kind: models.RuleTransform, Target: "Estimate", Transform: models.TransformEstimate},
	{Source: "Task Estimate Total", Kind: models.RuleDrop},
	{Source: "Task Remaining Total", Kind: models.RuleDrop},
	{Source: "Owner", Kind: models.RuleTransform, Target: "Owned By", Transform: models.TransformUserName},
	{Source: "Package", Kind: models.RuleAccumulate, Target: "Labels"},
	{Source: "Last Update Date", Kind: models.RuleDrop},
	{Source: "Notes", Kind: models.RuleCopy, Target: "Note"},
	{Source: "Object ID(OID)", Kind: models.RuleAccumulate, Target: "Description"},
	{Source: "Priority", Kind: models.RuleDrop},
	{Source: "Project", Kind: models.RuleDrop},
	{Source: "Tags", Kind: models.RuleDrop},
	{Source: "Actual", Kind: models.RuleDrop},
	{Source: "Blocked", Kind: models.RuleDrop},
	{Source: "Creation Date", Kind: models.RuleTransform, Target: "Created at", Transform: models.TransformDate},
	{Source: "Description", Kind: models.RuleAccumulate, Target: "Description"},
	{Source: "Epic Group", Kind: models.RuleAccumulate, Target: "Labels"},
}
