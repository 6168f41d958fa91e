package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"emoboard/internal/config"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// cliEnv points every invocation at a private data dir and a config path that does not exist.
type cliEnv struct {
	t       *testing.T
	base    []string
	dataDir string
}

func newCLIEnv(t *testing.T, backend string) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	return &cliEnv{
		t:       t,
		dataDir: data,
		base:    []string{"--config", filepath.Join(dir, "config.yaml"), "--dir", data, "--backend", backend},
	}
}

func (e *cliEnv) run(args ...string) map[string]any {
	e.t.Helper()
	out, errOut, err := runCLI(e.t, append(append([]string{}, e.base...), args...))
	require.NoError(e.t, err, "stderr:\n%s", errOut)

	var env map[string]any
	require.NoError(e.t, json.Unmarshal(out, &env), "stdout:\n%s", out)
	require.Contains(e.t, env, "data")
	return env
}

func (e *cliEnv) fail(args ...string) string {
	e.t.Helper()
	_, errOut, err := runCLI(e.t, append(append([]string{}, e.base...), args...))
	require.Error(e.t, err)
	return string(errOut)
}

func (e *cliEnv) ids() []string {
	e.t.Helper()
	list := e.run("list")["data"].([]any)
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it.(map[string]any)["id"].(string))
	}
	return out
}

func TestAddListDelete_AcrossInvocations(t *testing.T) {
	t.Parallel()

	for _, backend := range []string{"sqlite", "file"} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			t.Parallel()
			env := newCLIEnv(t, backend)

			first := env.run("add", "joy", "shipped", "it")["data"].(map[string]any)
			require.Equal(t, "Joy", first["type"])
			require.Equal(t, "shipped it", first["comment"])
			require.Equal(t, "#FACC15", first["color"])
			require.Equal(t, "😊", first["icon"])

			second := env.run("add", "Sadness", "--comment", "  rain  ")["data"].(map[string]any)
			require.Equal(t, "rain", second["comment"])

			require.Equal(t, []string{second["id"].(string), first["id"].(string)}, env.ids())

			del := env.run("delete", first["id"].(string))["data"].(map[string]any)
			require.Equal(t, true, del["deleted"])
			again := env.run("delete", first["id"].(string))["data"].(map[string]any)
			require.Equal(t, false, again["deleted"])

			require.Equal(t, []string{second["id"].(string)}, env.ids())
		})
	}
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "file")
	stderr := env.fail("add", "boredom")
	require.Contains(t, stderr, "boredom")

	stderr = env.fail("add", "joy", strings.Repeat("x", 201))
	require.Contains(t, stderr, "201")

	require.Empty(t, env.ids())
}

func TestMove_SpliceSemanticsAndRangeError(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "sqlite")
	env.run("add", "joy", "a")
	env.run("add", "calm", "b")
	env.run("add", "fear", "c")
	before := env.ids() // [c, b, a]

	moved := env.run("move", "0", "2")["data"].([]any)
	require.Len(t, moved, 3)
	require.Equal(t, []string{before[1], before[2], before[0]}, env.ids())

	stderr := env.fail("move", "0", "3")
	require.Contains(t, stderr, "out of range")
	require.Equal(t, []string{before[1], before[2], before[0]}, env.ids())

	env.fail("move", "x", "1")
}

func TestClear_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "file")
	env.run("add", "love")
	env.run("add", "anger")

	stderr := env.fail("clear")
	require.Contains(t, stderr, "--yes")
	require.Len(t, env.ids(), 2)

	out := env.run("clear", "--yes")["data"].(map[string]any)
	require.Equal(t, float64(2), out["cleared"])
	require.Empty(t, env.ids())
}

func TestStats_CountsEveryTypeAndPicksTop(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "sqlite")
	env.run("add", "joy")
	env.run("add", "sadness")
	env.run("add", "joy")

	for _, filter := range []string{"today", "week", "month"} {
		data := env.run("stats", "--filter", filter)["data"].(map[string]any)
		require.Equal(t, filter, data["filter"])
		require.Equal(t, float64(3), data["total"])

		counts := data["counts"].(map[string]any)
		require.Len(t, counts, 8)
		require.Equal(t, float64(2), counts["Joy"])
		require.Equal(t, float64(1), counts["Sadness"])
		require.Equal(t, float64(0), counts["Excitement"])

		top := data["top"].(map[string]any)
		require.Equal(t, "Joy", top["type"])
		require.Equal(t, float64(67), top["percent"])
	}

	env.fail("stats", "--filter", "year")
}

func TestStats_EmptyBoardHasNoTop(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "file")
	data := env.run("stats")["data"].(map[string]any)
	require.Equal(t, float64(0), data["total"])
	require.Nil(t, data["top"])
	require.Empty(t, data["breakdown"])
}

func TestShow_NotFound(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "file")
	stderr := env.fail("show", "emo-missing")
	require.Contains(t, stderr, "emotion not found: emo-missing")

	added := env.run("add", "surprise")["data"].(map[string]any)
	shown := env.run("show", added["id"].(string))["data"].(map[string]any)
	require.Equal(t, float64(0), shown["position"])
}

func TestTypesAndStatus(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "sqlite")
	types := env.run("types")["data"].([]any)
	require.Len(t, types, 8)
	require.Equal(t, "Joy", types[0].(map[string]any)["type"])
	require.Equal(t, "Excitement", types[7].(map[string]any)["type"])

	env.run("add", "calm")
	status := env.run("status")["data"].(map[string]any)
	require.Equal(t, "sqlite", status["backend"])
	require.Equal(t, env.dataDir, status["dir"])
	require.Equal(t, float64(1), status["emotions"])
	require.Equal(t, float64(1), status["schemaVersion"])
	require.Nil(t, status["loadError"])
}

func TestFormats(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "file")
	env.run("add", "excitement", "launch day")

	out, errOut, err := runCLI(t, append(append([]string{}, env.base...), "--format", "text", "list"))
	require.NoError(t, err, "stderr:\n%s", errOut)
	require.Contains(t, string(out), "launch day")
	require.Contains(t, string(out), "Excitement")

	out, errOut, err = runCLI(t, append(append([]string{}, env.base...), "--format", "edn", "types"))
	require.NoError(t, err, "stderr:\n%s", errOut)
	require.True(t, strings.HasPrefix(string(out), "{:data ["), "got %s", out)
	require.Contains(t, string(out), `:type "Joy"`)
}

func TestRoot_RejectsUnknownBackend(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "postgres")
	stderr := env.fail("list")
	require.Contains(t, stderr, "backend")
}

func TestConfig_InitWritesEffectiveConfig(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "file")
	path := env.base[1]

	shown := env.run("config", "show")["data"].(map[string]any)
	require.Equal(t, path, shown["path"])
	require.Equal(t, false, shown["exists"])
	require.Equal(t, "file", shown["config"].(map[string]any)["backend"])

	env.run("config", "init")
	saved, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "file", saved.Backend)
	require.Equal(t, env.dataDir, saved.DataDir)

	stderr := env.fail("config", "init")
	require.Contains(t, stderr, "already exists")
	env.run("config", "init", "--force")

	shown = env.run("config", "show")["data"].(map[string]any)
	require.Equal(t, true, shown["exists"])
}
