package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/gltf"
)

var flagOutput string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the asset, collection sizes and scene tree of a document",
	Long: `Import a document and print a summary: asset metadata, the size of every
entity collection and, per scene, the node tree with each node's position in
scene space.

Example:
  gltfcheck inspect scene.gltf
  gltfcheck inspect -o yaml scene.gltf`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "output format (text|json|yaml)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := args[0]
	opt, err := importOpt(func(it gltf.Issue) { printWarn(cmd.ErrOrStderr(), path, issueLine(it)) })
	if err != nil {
		return err
	}
	doc, err := loadDocument(path, opt)
	if err != nil {
		if iss, ok := gltf.AsIssues(err); ok {
			printErr(cmd.ErrOrStderr(), path, fmt.Sprintf("%d issue(s)", len(iss)))
			printIssues(cmd.ErrOrStderr(), iss)
		}
		return err
	}
	s, err := buildSummary(path, doc)
	if err != nil {
		return err
	}
	return writeSummary(out, s, flagOutput)
}

func writeSummary(w io.Writer, s summary, format string) error {
	switch strings.ToLower(format) {
	case "json":
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "", "text":
		writeSummaryText(w, s)
		return nil
	}
	return fmt.Errorf("invalid --output %q: expected text, json or yaml", format)
}

func writeSummaryText(w io.Writer, s summary) {
	printSection(w, s.File)
	asset := "glTF " + s.Version
	if s.Generator != "" {
		asset += " (" + s.Generator + ")"
	}
	printInfo(w, "", asset)
	if len(s.ExtensionsUsed) > 0 {
		printInfo(w, "", "extensions used: "+strings.Join(s.ExtensionsUsed, ", "))
	}
	if len(s.ExtensionsRequired) > 0 {
		printInfo(w, "", "extensions required: "+strings.Join(s.ExtensionsRequired, ", "))
	}

	printBullet(w, "Collections:")
	keys := make([]string, 0, len(s.Counts))
	for k := range s.Counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if n := s.Counts[k]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", k, n)
		}
	}

	for _, sc := range s.Scenes {
		title := fmt.Sprintf("Scene %d", sc.Index)
		if sc.Name != "" {
			title += " " + sc.Name
		}
		if sc.Default {
			title += " (default)"
		}
		printBullet(w, title)
		for _, n := range sc.Nodes {
			label := fmt.Sprintf("node %d", n.Index)
			if n.Name != "" {
				label += " " + n.Name
			}
			if n.Mesh != nil {
				label += fmt.Sprintf(" mesh=%d", *n.Mesh)
			}
			if n.Camera != nil {
				label += fmt.Sprintf(" camera=%d", *n.Camera)
			}
			fmt.Fprintf(w, "  %s%s at (%g, %g, %g)\n", strings.Repeat("  ", n.Depth), label,
				n.Position[0], n.Position[1], n.Position[2])
		}
	}
}
