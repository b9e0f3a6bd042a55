package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	env := NewTestEnv(t)

	stdout, stderr, code := env.Run("validate", TaskFile(t, "task.json"))
	assert.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "daily-checkin is valid")
	assert.Contains(t, stdout, "3 steps, 4 questions, 2 async actions")
}

func TestValidateCommandJSONOutput(t *testing.T) {
	env := NewTestEnv(t)

	stdout, stderr, code := env.Run("validate", "--json", TaskFile(t, "task.json"))
	require.Equal(t, 0, code, "stderr: %s", stderr)

	var report struct {
		Valid        bool   `json:"valid"`
		Task         string `json:"task"`
		Steps        int    `json:"steps"`
		Questions    int    `json:"questions"`
		AsyncActions int    `json:"async_actions"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, "daily-checkin", report.Task)
	assert.Equal(t, 3, report.Steps)
	assert.Equal(t, 4, report.Questions)
	assert.Equal(t, 2, report.AsyncActions)
}

func TestValidateCommandRejectsBadDocument(t *testing.T) {
	env := NewTestEnv(t)

	bad := filepath.Join(env.TempDir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"identifier": "t", "steps": []}`), 0o644))

	_, stderr, code := env.Run("validate", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid task definition")
}

func TestValidateCommandMissingFile(t *testing.T) {
	env := NewTestEnv(t)

	_, stderr, code := env.Run("validate", filepath.Join(env.TempDir, "absent.json"))
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "load task definition")
}

func TestInspectCommand(t *testing.T) {
	env := NewTestEnv(t)

	stdout, stderr, code := env.Run("inspect", TaskFile(t, "task.json"))
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Contains(t, stdout, "Task: daily-checkin (3 steps)")
	assert.Contains(t, stdout, "questions [form]")
	assert.Contains(t, stdout, "mood: single_choice")
	assert.Contains(t, stdout, "notes: text")
	assert.Contains(t, stdout, "Async actions:")
	assert.Contains(t, stdout, "motion [motion] steps 2..2")
	assert.Contains(t, stdout, "gps [location] steps 1..3", "open window spans the whole task")
}

func TestInspectCommandJSONRoundTrips(t *testing.T) {
	env := NewTestEnv(t)

	stdout, stderr, code := env.Run("inspect", "--json", TaskFile(t, "task.json"))
	require.Equal(t, 0, code, "stderr: %s", stderr)

	var task struct {
		Identifier string `json:"identifier"`
		Steps      []struct {
			Identifier string `json:"identifier"`
			Type       string `json:"type"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &task))
	assert.Equal(t, "daily-checkin", task.Identifier)
	require.Len(t, task.Steps, 3)
	assert.Equal(t, "intro", task.Steps[0].Identifier)
}

func TestTemplateCommand(t *testing.T) {
	env := NewTestEnv(t)

	stdout, stderr, code := env.Run("template", TaskFile(t, "task.json"))
	require.Equal(t, 0, code, "stderr: %s", stderr)

	var result struct {
		TaskIdentifier string `json:"task_identifier"`
		Steps          []struct {
			StepIdentifier string `json:"step_identifier"`
			Questions      []struct {
				Identifier string `json:"identifier"`
				AnswerType string `json:"answer_type"`
				Value      any    `json:"value"`
			} `json:"questions"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "daily-checkin", result.TaskIdentifier)
	require.Len(t, result.Steps, 1, "only form steps appear in the template")
	assert.Equal(t, "questions", result.Steps[0].StepIdentifier)
	require.Len(t, result.Steps[0].Questions, 4)
	assert.Equal(t, "mood", result.Steps[0].Questions[0].Identifier)
	assert.Nil(t, result.Steps[0].Questions[0].Value)
}

func TestVersionCommand(t *testing.T) {
	env := NewTestEnv(t)

	stdout, _, code := env.Run("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "formsource")
}

func TestConfigFileCreatedOnFirstRun(t *testing.T) {
	env := NewTestEnv(t)

	_, _, code := env.Run("version")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(env.ConfigDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "output: text")
}

func TestStringsFileOverride(t *testing.T) {
	env := NewTestEnv(t)

	strings := filepath.Join(env.TempDir, "strings.yaml")
	require.NoError(t, os.WriteFile(strings, []byte("permission.motion: Motion override text\n"), 0o644))

	require.NoError(t, os.MkdirAll(env.ConfigDir, 0o755))
	config := "output: text\nstrings_file: " + strings + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.ConfigDir, "config.yaml"), []byte(config), 0o644))

	stdout, stderr, code := env.Run("inspect", TaskFile(t, "task.json"))
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Motion override text")
}
