// Test Type: Unit Test
// Description: Tests for trace precedence and the trace report

package debugtrace_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/importglob/pkg/ast"
	"github.com/arthur-debert/importglob/pkg/debugtrace"
	"github.com/arthur-debert/importglob/pkg/rules"
	"github.com/arthur-debert/importglob/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	on, off := true, false
	debugRule := &rules.Rule{Name: "r", Debug: true}
	quietRule := &rules.Rule{Name: "q"}

	tests := []struct {
		name   string
		marker *bool
		rule   *rules.Rule
		global bool
		want   bool
	}{
		{"nothing_set", nil, nil, false, false},
		{"global_only", nil, nil, true, true},
		{"rule_overrides_global", nil, debugRule, false, true},
		{"quiet_rule_falls_back_to_global", nil, quietRule, true, true},
		{"marker_on_beats_everything", &on, quietRule, false, true},
		{"marker_off_beats_rule", &off, debugRule, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, debugtrace.Enabled(tt.marker, tt.rule, tt.global))
		})
	}
}

func TestEmitter_Report(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	t.Run("replacement", func(t *testing.T) {
		var buf bytes.Buffer
		emitter := debugtrace.NewEmitter(zerolog.New(&buf))

		emitter.Report(debugtrace.Trace{
			Original: `require("./*.ts")`,
			Request:  &types.Request{Kind: types.KindRequire, Source: "./*.ts", From: "/x/index.ts"},
			Rule:     &rules.Rule{Name: "lazy"},
			Pattern:  "/x/*.ts",
			Files: []types.FileMatch{{
				Filename: "/x/a.ts",
				Segments: []types.Segment{types.Some("a")},
			}},
			Replacement: []ast.Statement{ast.SideEffectImport("/x/a.ts")},
			Replaced:    true,
		})

		var event map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
		assert.Equal(t, `require("./*.ts")`, event["original"])
		assert.Equal(t, `import "/x/a.ts";`, event["replacement"])
		assert.Equal(t, "lazy", event["rule"])
		assert.Equal(t, "/x/*.ts", event["pattern"])

		req := event["request"].(map[string]interface{})
		assert.Equal(t, "require", req["type"])

		files := event["files"].([]interface{})
		require.Len(t, files, 1)
		assert.Equal(t, []interface{}{"a"}, files[0].(map[string]interface{})["matches"])
	})

	t.Run("noop_reports_nothing", func(t *testing.T) {
		var buf bytes.Buffer
		debugtrace.NewEmitter(zerolog.New(&buf)).Report(debugtrace.Trace{
			Original: `import "./fixed/file.ts"`,
		})

		var event map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
		assert.Equal(t, debugtrace.Nothing, event["replacement"])
		assert.Equal(t, false, event["replaced"])
		assert.NotContains(t, event, "rule")
	})
}
