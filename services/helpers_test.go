package services

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rallytopivotal/config"
	"rallytopivotal/models"
	"rallytopivotal/utils"
)

func TestMain(m *testing.M) {
	utils.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestStore() *Store {
	return NewStore(NewCSVProcessor(&config.Config{}))
}

var testUsers = models.UserMap{
	{RallyName: "heppy", PivotalName: "Peppy Heppy", PivotalInitials: "PH"},
	{RallyName: "jdoe", PivotalName: "Jane Doe", PivotalInitials: "JD"},
}

// loadScenario はストーリー1件、イテレーション1件、タスク1件の最小構成を読み込みます
func loadScenario(s *Store) {
	s.AddStory(models.CSVRecord{
		"Formatted ID":   "US1",
		"Name":           "Checkout flow",
		"Iteration":      "Sprint 3",
		"Plan Estimate":  "4",
		"Schedule State": "In-Progress",
		"Owner":          "heppy",
	})
	s.AddIteration(models.CSVRecord{
		"Name":       "Sprint 3",
		"Start Date": "2024-01-01",
		"End Date":   "2024-01-14",
	})
	s.AddTask(models.CSVRecord{
		"Formatted ID":    "TA1",
		"Name":            "do thing",
		"Work Product":    "US1: do thing",
		"Owner":           "heppy",
		"Scheduled State": "Completed",
	})
}
