package services

import (
	"fmt"
	"strings"

	"rallytopivotal/config"
	"rallytopivotal/models"
	"rallytopivotal/utils"
)

// IterationFinder は名前でイテレーションを検索します
type IterationFinder interface {
	FindIteration(name string) models.CSVRecord
}

// workingField はPivotalの1カラム分の途中結果です
// 変換関数は値の集約時ではなく、カラムの値を確定するときに適用します
type workingField struct {
	value      string
	fragments  []string
	accumulate bool
	transform  models.TransformKind
}

// workingStory はPivotalのカラム名→途中結果のマップです
type workingStory map[string]*workingField

func (w workingStory) field(name string) *workingField {
	f, ok := w[name]
	if !ok {
		f = &workingField{}
		w[name] = f
	}
	return f
}

// fieldResult は1カラムの解決結果です。errがある場合、そのカラムは空になります
type fieldResult struct {
	value string
	err   error
}

// Assembler はRallyストーリーをPivotal Trackerストーリーに組み立てます
type Assembler struct {
	transformer *Transformer
}

// NewAssembler は新しいアセンブラーを作成します
func NewAssembler(transformer *Transformer) *Assembler {
	return &Assembler{transformer: transformer}
}

// BuildPivotalStories はストア内のすべてのストーリーを読み込み順に変換します
func (a *Assembler) BuildPivotalStories(store *Store) ([]models.PivotalStory, error) {
	if err := store.checkLoaded(); err != nil {
		return nil, fmt.Errorf("ストーリーを変換できません: %w", err)
	}

	store.AttachTasksToStories()

	stories := store.Stories()
	result := make([]models.PivotalStory, 0, len(stories))
	for _, story := range stories {
		result = append(result, a.AssembleStory(story, store))
	}

	utils.LogInfo("変換完了: %d 件のストーリーを処理しました", len(result))
	return result, nil
}

// AssembleStory は1件のRallyストーリーを変換します
// 個別カラムの解決に失敗してもストーリー全体は失敗させず、そのカラムを空にします
func (a *Assembler) AssembleStory(story *models.RallyStory, iterations IterationFinder) models.PivotalStory {
	work := collectFields(story.Record)

	// イテレーションの期間
	start := work.field("Iteration Start")
	end := work.field("Iteration End")
	if iteration := a.findIteration(work, iterations); iteration != nil {
		start.value, start.transform = iteration[config.IterationStartField], models.TransformDate
		end.value, end.transform = iteration[config.IterationEndField], models.TransformDate
	}

	work.field("Story Type").value = config.DefaultStoryType

	fields := make(map[string]string, len(config.PivotalFields))
	for _, name := range config.PivotalFields {
		if config.BlankPivotalFields[name] {
			continue
		}

		res := a.resolveField(work, name)
		if res.err != nil {
			utils.LogWarn("%s: カラム '%s' を空にします: %v", story.ID(), name, res.err)
			res.value = ""
		}
		fields[name] = res.value
	}

	return models.PivotalStory{
		FormattedID: story.ID(),
		Fields:      fields,
	}
}

// collectFields はStoryFieldMapに従ってRallyのフィールドをPivotalのカラムに集約します
func collectFields(record models.CSVRecord) workingStory {
	work := make(workingStory)
	for _, rule := range config.StoryFieldMap {
		raw := record[rule.Source]

		switch rule.Kind {
		case models.RuleDrop:
			utils.LogDebug("skipping %s", rule.Source)
		case models.RuleAccumulate:
			f := work.field(rule.Target)
			f.accumulate = true
			if raw != "" {
				f.fragments = append(f.fragments, fmt.Sprintf("%s: %s", rule.Source, raw))
			}
		case models.RuleCopy:
			f := work.field(rule.Target)
			if raw != "" {
				f.value = raw
			}
		case models.RuleTransform:
			f := work.field(rule.Target)
			f.value = raw
			f.transform = rule.Transform
		}
	}
	return work
}

// findIteration はストーリーのイテレーションを探します
// Rallyのイテレーション名（"Sprint 3"）で見つからない場合は変換後の名前（"3"）でも探します
func (a *Assembler) findIteration(work workingStory, iterations IterationFinder) models.CSVRecord {
	f, ok := work["Iteration"]
	if !ok || f.value == "" {
		return nil
	}

	if iteration := iterations.FindIteration(f.value); iteration != nil {
		return iteration
	}
	return iterations.FindIteration(IterationLabel(f.value))
}

// resolveField は同義カラムを優先して値を確定し、変換関数を適用します
func (a *Assembler) resolveField(work workingStory, name string) fieldResult {
	source := name
	if alias, ok := config.FieldSynonyms[name]; ok {
		if _, found := work[alias]; found {
			source = alias
		}
	}

	f, ok := work[source]
	if !ok {
		return fieldResult{err: fmt.Errorf("カラム '%s' の値がありません", source)}
	}

	if f.accumulate {
		return fieldResult{value: strings.Join(f.fragments, config.AccumulatorSeparators[source])}
	}

	value, err := a.transformer.Apply(f.transform, f.value)
	if err != nil {
		return fieldResult{err: fmt.Errorf("%s 変換エラー: %w", f.transform, err)}
	}
	return fieldResult{value: value}
}
