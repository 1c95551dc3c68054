package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rallytopivotal/config"
	"rallytopivotal/models"
)

// Transformer はフィールド値の変換を行います
type Transformer struct {
	users models.UserMap
}

// NewTransformer はユーザーマッピングを使う変換器を作成します
func NewTransformer(users models.UserMap) *Transformer {
	return &Transformer{users: users}
}

// Apply は変換関数の種別に応じて値を変換します
func (t *Transformer) Apply(kind models.TransformKind, value string) (string, error) {
	switch kind {
	case models.TransformNone:
		return value, nil
	case models.TransformIterationLabel:
		return IterationLabel(value), nil
	case models.TransformState:
		return MapState(value), nil
	case models.TransformEstimate:
		return strconv.Itoa(SnapEstimate(value)), nil
	case models.TransformUserName:
		return t.UserName(value), nil
	case models.TransformUserInitials:
		return t.UserInitials(value), nil
	case models.TransformDate:
		return FormatDate(value)
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownTransform, kind)
}

// IterationLabel はイテレーション名から "Sprint " を取り除きます
func IterationLabel(iteration string) string {
	return strings.TrimPrefix(iteration, config.IterationPrefix)
}

// MapState はRallyのSchedule StateをPivotalのCurrent Stateに変換します
// 未知の値は空文字になります
func MapState(state string) string {
	return config.StateMapping[state]
}

// SnapEstimate はポイントを 1, 2, 3, 5, 8 に丸めます
//
// 5より大きく8未満の値は0になります。既存のエクスポート結果と揃えるため、この挙動は変更しないでください
// 数値として解釈できない値は0として扱います（結果は1）
func SnapEstimate(estimate string) int {
	e, err := strconv.ParseFloat(strings.TrimSpace(estimate), 64)
	if err != nil {
		e = 0
	}

	switch {
	case e > 8:
		return 8
	case isBucket(e):
		return int(e)
	case e < 1:
		return 1
	case e < 2:
		return 2
	case e < 3:
		return 3
	case e < 5:
		return 5
	default:
		return 0
	}
}

func isBucket(e float64) bool {
	for _, b := range config.EstimateBuckets {
		if e == b {
			return true
		}
	}
	return false
}

// UserName はRallyのユーザー名をPivotalのユーザー名に変換します
func (t *Transformer) UserName(person string) string {
	u, ok := t.users.Find(person)
	if !ok {
		return ""
	}
	return u.PivotalName
}

// UserInitials はRallyのユーザー名をPivotalのイニシャルに変換します
func (t *Transformer) UserInitials(person string) string {
	initials, _ := t.LookupInitials(person)
	return initials
}

// LookupInitials はイニシャルと、マッピングが存在したかどうかを返します
func (t *Transformer) LookupInitials(person string) (string, bool) {
	u, ok := t.users.Find(person)
	if !ok {
		return "", false
	}
	return u.PivotalInitials, true
}

// FormatDate はRallyの日付を "02-Jan-06" 形式に変換します
func FormatDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	for _, layout := range config.DateLayouts {
		d, err := time.Parse(layout, date)
		if err == nil {
			return d.Format(config.PivotalDateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrInvalidDate, date)
}

// TaskStatus はタスクのScheduled Stateを completed / not completed に変換します
func TaskStatus(state string) string {
	if state == config.TaskCompletedState {
		return "completed"
	}
	return "not completed"
}
