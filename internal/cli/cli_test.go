package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(context.Background(), args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

var cableArgs = []string{"--outer-d", "10", "--thickness", "2", "--s-density", "1000"}

func TestScrewValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"square pitch", []string{"--size", "200", "--depth", "10", "--density", "800", "--rpm", "1"}, "23.51\n"},
		{"double flighted", []string{"--size", "250", "--depth", "12", "--density", "800", "--rpm", "100",
			"--pitch", "300", "--w-flight", "25", "--n-flight", "2"}, "4540.04\n"},
		{"small screw", []string{"--size", "20", "--depth", "2", "--density", "1000", "--rpm", "30"}, "1.69\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := run(t, append([]string{"screw"}, tt.args...)...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestScrewValueOutOfRange(t *testing.T) {
	code, out, stderr := run(t, "screw", "--size", "200", "--depth", "1", "--density", "800", "--rpm", "1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Channel depth is too shallow")
}

func TestCableValue(t *testing.T) {
	code, out, stderr := run(t, append([]string{"cable", "--l-speed", "100"}, cableArgs...)...)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "301.593\n", out)
}

func TestCableTableCSV(t *testing.T) {
	code, out, stderr := run(t, append([]string{"cable", "table", "--format", "csv"}, cableArgs...)...)
	require.Equal(t, 0, code, stderr)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 6) // header + 5 extruder sizes
	assert.Len(t, recs[0], 11)
	assert.Equal(t, "1mpm", recs[0][1])
	assert.Equal(t, []string{"20mm Ext", "150.8", "301.6", "452.4", "603.2", "754",
		"904.8", "1055.6", "1206.35", "1357.15", "1507.95"}, recs[1])
	assert.Equal(t, []string{"100mm Ext", "0.97", "1.93", "2.9", "3.87", "4.83",
		"5.8", "6.77", "7.73", "8.7", "9.67"}, recs[5])
}

func TestCableTableCardinality(t *testing.T) {
	code, out, stderr := run(t, append([]string{"cable", "table", "--format", "csv", "--delta-size", "10"}, cableArgs...)...)
	require.Equal(t, 0, code, stderr)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)

	code, out, stderr = run(t, append([]string{"cable", "table", "--format", "csv", "--max-l-speed", "5"}, cableArgs...)...)
	require.Equal(t, 0, code, stderr)
	header := strings.Split(strings.SplitN(out, "\n", 2)[0], ",")
	assert.Len(t, header, 6)
}

func TestCableTableBadStep(t *testing.T) {
	code, _, stderr := run(t, append([]string{"cable", "table", "--delta-l-speed", "10"}, cableArgs...)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "delta_l_speed")
}

func TestTextTableTitle(t *testing.T) {
	code, out, stderr := run(t, "screw", "table", "--size", "100", "--density", "800")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Throughput[kg/hr] at 5~50RPM for channel depths from 2 to 9mm", lines[0])
	assert.Contains(t, lines[1], "depth=2")
	assert.Contains(t, lines[2], "rpm=5")
}

func TestCableChartJSON(t *testing.T) {
	code, out, stderr := run(t, append([]string{"cable", "chart", "--format", "json"}, cableArgs...)...)
	require.Equal(t, 0, code, stderr)

	var spec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &spec))
	assert.Equal(t, "line", spec["mark"].(map[string]any)["type"])
	values := spec["data"].(map[string]any)["values"].([]any)
	assert.Len(t, values, 10*81)
}

func TestChartHTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "throughput.html")
	code, out, stderr := run(t, "screw", "chart", "--size", "100", "--density", "800", "--out", path)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, out)

	d, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(d), "vegaEmbed")
	assert.Contains(t, string(d), `"type":"circle"`)
}

func TestCableRecommend(t *testing.T) {
	code, out, stderr := run(t, append([]string{"cable", "recommend", "--l-speed", "10"}, cableArgs...)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "60mm Ext runs at 45.01 rpm (IN_WINDOW)")
	assert.Contains(t, out, "OVER_LIMIT")
	assert.Contains(t, out, "BELOW_WINDOW")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCableRecommendWriteError(t *testing.T) {
	var errBuf bytes.Buffer
	args := append([]string{"cable", "recommend", "--l-speed", "10"}, cableArgs...)
	code := Run(context.Background(), args, failingWriter{}, &errBuf)
	assert.Equal(t, 1, code)
	assert.Contains(t, errBuf.String(), "disk full")
}

func TestRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rod.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
kind: rod
output: value
params:
  rod_dia: 5
  no_holes: 10
  l_speed: 10
  s_density: 1000
`), 0o600))

	code, out, stderr := run(t, "run", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "117.81\n", out)
}

func TestRunScenarioTypeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
kind: sheet
params: {width: "wide", thickness: 1, l_speed: 0.5, s_density: 1000}
`), 0o600))

	code, _, stderr := run(t, "run", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "'width' should be a number")
}

func TestBadLogLevel(t *testing.T) {
	code, _, stderr := run(t, "--log-level", "loud", "screw")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--log-level")
}
