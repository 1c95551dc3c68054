package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"rallytopivotal/models"
	"rallytopivotal/utils"
)

// LoadUserMapping はユーザーマッピングのYAMLファイルを読み込みます
//
// 形式:
//
//	- rally_name: heppy
//	  pivotal_name: Peppy Heppy
//	  pivotal_initials: PH
func LoadUserMapping(path string) (models.UserMap, error) {
	utils.LogDebug("user_config: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ユーザー設定 %w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("ユーザー設定読み込みエラー (%s): %w", path, err)
	}

	return ParseUserMapping(data)
}

// ParseUserMapping はYAMLデータからユーザーマッピングを作成します
func ParseUserMapping(data []byte) (models.UserMap, error) {
	var users models.UserMap
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("ユーザー設定の解析エラー: %w", err)
	}

	utils.LogDebug("ユーザーマッピングを読み込みました: %d 件", len(users))
	return users, nil
}
