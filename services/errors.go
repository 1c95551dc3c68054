package services

import "errors"

var (
	// ErrSourceNotFound は入力ファイルやディレクトリが存在しない場合のエラーです
	ErrSourceNotFound = errors.New("ファイルが見つかりません")
	// ErrNotLoaded はデータ読み込み前に変換しようとした場合のエラーです
	ErrNotLoaded = errors.New("データが読み込まれていません")
	// ErrMissingUserMapping はタスク担当者のユーザーマッピングが無い場合のエラーです
	ErrMissingUserMapping = errors.New("ユーザーマッピングが不足しています。ユーザー設定ファイルを更新してください")
	// ErrUnknownTransform は未定義の変換関数が指定された場合のエラーです
	ErrUnknownTransform = errors.New("未定義の変換関数です")
	// ErrInvalidDate は日付を解析できない場合のエラーです
	ErrInvalidDate = errors.New("日付を解析できません")
)
