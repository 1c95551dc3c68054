package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rallytopivotal/models"
)

func TestSnapEstimate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0.5", 1},
		{"1", 1},
		{"1.5", 2},
		{"2", 2},
		{"2.5", 3},
		{"3", 3},
		{"4", 5},
		{"5", 5},
		// 5より大きく8未満は0
		{"6", 0},
		{"7", 0},
		{"7.9", 0},
		{"8", 8},
		{"9", 8},
		{"13", 8},
		{"", 1},
		{"abc", 1},
		{" 4 ", 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapEstimate(tt.in), "SnapEstimate(%q)", tt.in)
	}
}

func TestMapState(t *testing.T) {
	tests := map[string]string{
		"Backlog":     "unscheduled",
		"Defined":     "unstarted",
		"In-Progress": "started",
		"Completed":   "delivered",
		"Accepted":    "accepted",
		"Blocked":     "",
		"":            "",
		"backlog":     "",
	}

	for in, want := range tests {
		assert.Equal(t, want, MapState(in), "MapState(%q)", in)
	}
}

func TestIterationLabel(t *testing.T) {
	assert.Equal(t, "3", IterationLabel("Sprint 3"))
	assert.Equal(t, "Release 2", IterationLabel("Release 2"))
	assert.Equal(t, "", IterationLabel(""))
}

func TestUserTransforms(t *testing.T) {
	tr := NewTransformer(testUsers)

	assert.Equal(t, "Peppy Heppy", tr.UserName("heppy"))
	assert.Equal(t, "PH", tr.UserInitials("heppy"))
	assert.Equal(t, "", tr.UserName("nobody"))
	assert.Equal(t, "", tr.UserInitials("nobody"))

	_, ok := tr.LookupInitials("nobody")
	assert.False(t, ok)
}

func TestUserTransformsFirstMatchWins(t *testing.T) {
	tr := NewTransformer(models.UserMap{
		{RallyName: "heppy", PivotalName: "First", PivotalInitials: "F"},
		{RallyName: "heppy", PivotalName: "Second", PivotalInitials: "S"},
	})

	assert.Equal(t, "First", tr.UserName("heppy"))
	assert.Equal(t, "F", tr.UserInitials("heppy"))
}

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"2024-12-25":           "25-Dec-24",
		"2024-12-25T10:30:00Z": "25-Dec-24",
		"2024-01-05T10:30:00":  "05-Jan-24",
		"12/25/2024":           "25-Dec-24",
		"Dec 25, 2024":         "25-Dec-24",
	}

	for in, want := range tests {
		got, err := FormatDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFormatDateInvalid(t *testing.T) {
	_, err := FormatDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = FormatDate("someday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestTaskStatus(t *testing.T) {
	assert.Equal(t, "completed", TaskStatus("Completed"))
	assert.Equal(t, "not completed", TaskStatus("In-Progress"))
	assert.Equal(t, "not completed", TaskStatus(""))
}

func TestApplyDispatch(t *testing.T) {
	tr := NewTransformer(testUsers)

	tests := []struct {
		kind models.TransformKind
		in   string
		want string
	}{
		{models.TransformNone, "as is", "as is"},
		{models.TransformIterationLabel, "Sprint 7", "7"},
		{models.TransformState, "Accepted", "accepted"},
		{models.TransformEstimate, "1.5", "2"},
		{models.TransformUserName, "jdoe", "Jane Doe"},
		{models.TransformUserInitials, "jdoe", "JD"},
		{models.TransformDate, "2024-03-01", "01-Mar-24"},
	}

	for _, tt := range tests {
		got, err := tr.Apply(tt.kind, tt.in)
		require.NoError(t, err, tt.kind.String())
		assert.Equal(t, tt.want, got, tt.kind.String())
	}

	_, err := tr.Apply(models.TransformKind(99), "x")
	assert.ErrorIs(t, err, ErrUnknownTransform)
}
