package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/reoring/gltf"
)

const sampleDoc = `{
	"asset": {"version": "2.0", "generator": "test"},
	"scene": 0,
	"scenes": [{"name": "main", "nodes": [0]}],
	"nodes": [
		{"name": "root", "translation": [1, 0, 0], "children": [1]},
		{"name": "cam", "translation": [0, 2, 0], "camera": 0}
	],
	"cameras": [{"type": "perspective", "perspective": {"yfov": 1, "znear": 0.1}}]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuildSummary(t *testing.T) {
	doc, err := gltf.Import[gltf.NoExtensions, gltf.NoExtras]([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	s, err := buildSummary("sample.gltf", doc)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Counts["nodes"] != 2 || s.Counts["cameras"] != 1 || s.Counts["meshes"] != 0 {
		t.Fatalf("unexpected counts %v", s.Counts)
	}
	cam := uint32(0)
	want := []sceneSummary{{
		Index:   0,
		Name:    "main",
		Default: true,
		Nodes: []nodeSummary{
			{Index: 0, Name: "root", Depth: 0, Position: [3]float32{1, 0, 0}},
			{Index: 1, Name: "cam", Depth: 1, Camera: &cam, Position: [3]float32{1, 2, 0}},
		},
	}}
	if diff := cmp.Diff(want, s.Scenes); diff != "" {
		t.Fatalf("scenes mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSummary_Formats(t *testing.T) {
	doc, err := gltf.Import[gltf.NoExtensions, gltf.NoExtras]([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	s, err := buildSummary("sample.gltf", doc)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeSummary(&buf, s, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON summary
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if diff := cmp.Diff(s, fromJSON); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := writeSummary(&buf, s, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML summary
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if diff := cmp.Diff(s, fromYAML); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := writeSummary(&buf, s, "text"); err != nil {
		t.Fatalf("text: %v", err)
	}
	text := buf.String()
	for _, want := range []string{"=== sample.gltf ===", "glTF 2.0 (test)", "Scene 0 main (default)", "node 1 cam camera=0 at (1, 2, 0)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text output lacks %q:\n%s", want, text)
		}
	}

	if err := writeSummary(&buf, s, "xml"); err == nil {
		t.Fatalf("unknown formats must be rejected")
	}
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "good.gltf", sampleDoc)
	bad := writeFile(t, "bad.gltf", `{"asset":{},"nodes":[{"mesh":0}]}`)
	yml := writeFile(t, "good.yaml", "asset:\n  version: \"2.0\"\nnodes:\n  - name: a\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"validate", good, bad, yml})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "1 of 3") {
		t.Fatalf("expected one invalid file, got %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"✓  [" + good + "]",
		"✓  [" + yml + "]",
		"✗  [" + bad + "] 1 issue(s)",
		"/nodes/0/mesh index_out_of_range",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestImportOpt_DuplicateKeys(t *testing.T) {
	defer func() { flagDuplicateKeys = "ignore" }()

	flagDuplicateKeys = "warn"
	opt, err := importOpt(nil)
	if err != nil || opt.Strictness.OnDuplicateKey != gltf.Warn {
		t.Fatalf("unexpected options %+v, %v", opt, err)
	}
	flagDuplicateKeys = "sometimes"
	if _, err := importOpt(nil); err == nil {
		t.Fatalf("invalid policies must be rejected")
	}
}
