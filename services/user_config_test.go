package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rallytopivotal/models"
)

func TestLoadUserMapping(t *testing.T) {
	path := writeFile(t, t.TempDir(), "user_config.yml", `---
-
  rally_name: heppy
  pivotal_name: Peppy Heppy
  pivotal_initials: PH
- rally_name: jdoe
  pivotal_name: Jane Doe
  pivotal_initials: JD
`)

	users, err := LoadUserMapping(path)
	require.NoError(t, err)

	if diff := cmp.Diff(testUsers, users); diff != "" {
		t.Errorf("users mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadUserMappingMissingFile(t *testing.T) {
	path := t.TempDir() + "/user_config.yml"

	_, err := LoadUserMapping(path)
	require.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestParseUserMappingInvalid(t *testing.T) {
	_, err := ParseUserMapping([]byte("rally_name: [unterminated"))
	assert.Error(t, err)
}

func TestParseUserMappingEmpty(t *testing.T) {
	users, err := ParseUserMapping(nil)
	require.NoError(t, err)
	assert.Equal(t, models.UserMap(nil), users)
}
