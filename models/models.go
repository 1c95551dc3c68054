package models

// CSVRecord はCSVの1行を表します (ヘッダー名→値のマップ)
type CSVRecord map[string]string

// RallyStory はRallyのストーリーと、それに紐づくタスクを表します
type RallyStory struct {
	Record CSVRecord
	// Tasks はAttachTasksToStoriesで設定されます（出力用のカラムではありません）
	Tasks []CSVRecord
}

// ID はストーリーのFormatted IDを返します
func (s *RallyStory) ID() string {
	return s.Record["Formatted ID"]
}

// UserMapping はRallyユーザーとPivotal Trackerユーザーの対応を表します
type UserMapping struct {
	RallyName       string `yaml:"rally_name"`
	PivotalName     string `yaml:"pivotal_name"`
	PivotalInitials string `yaml:"pivotal_initials"`
}

// UserMap はユーザーマッピングの一覧です
type UserMap []UserMapping

// Find はRally名に一致する最初のマッピングを返します
func (m UserMap) Find(rallyName string) (UserMapping, bool) {
	for _, u := range m {
		if u.RallyName == rallyName {
			return u, true
		}
	}
	return UserMapping{}, false
}

// PivotalStory は変換後のPivotal Trackerストーリーです
type PivotalStory struct {
	// FormattedID はタスクの紐付けのために元のRally IDを保持します
	FormattedID string
	Fields      map[string]string
}

// RuleKind はフィールド変換ルールの種類です
type RuleKind int

const (
	// RuleDrop はフィールドを出力しません
	RuleDrop RuleKind = iota
	// RuleCopy は値をそのままコピーします（後勝ち）
	RuleCopy
	// RuleAccumulate は "<フィールド名>: <値>" を追記します (Labels, Description)
	RuleAccumulate
	// RuleTransform は値を変換関数に通します
	RuleTransform
)

func (k RuleKind) String() string {
	switch k {
	case RuleDrop:
		return "drop"
	case RuleCopy:
		return "copy"
	case RuleAccumulate:
		return "accumulate"
	case RuleTransform:
		return "transform"
	}
	return "unknown"
}

// TransformKind は値の変換関数を表します
type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformIterationLabel
	TransformState
	TransformEstimate
	TransformUserName
	TransformUserInitials
	TransformDate
)

func (k TransformKind) String() string {
	switch k {
	case TransformNone:
		return "none"
	case TransformIterationLabel:
		return "iteration_label"
	case TransformState:
		return "state"
	case TransformEstimate:
		return "estimate"
	case TransformUserName:
		return "user_name"
	case TransformUserInitials:
		return "user_initials"
	case TransformDate:
		return "date"
	}
	return "unknown"
}

// FieldRule はRallyストーリーの1フィールドの変換方法を表します
type FieldRule struct {
	Source    string
	Kind      RuleKind
	Target    string
	Transform TransformKind
}
