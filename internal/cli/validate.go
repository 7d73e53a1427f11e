package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/gltf"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that documents decode and every reference resolves",
	Long: `Import each file with the default capabilities and report every decode
and graph issue found. The command fails when any file is invalid.

Example:
  gltfcheck validate scene.gltf
  gltfcheck validate --duplicate-keys error --lang ja a.gltf b.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		opt, err := importOpt(func(it gltf.Issue) { printWarn(out, path, issueLine(it)) })
		if err != nil {
			return err
		}
		doc, err := loadDocument(path, opt)
		if err != nil {
			failed++
			iss, ok := gltf.AsIssues(err)
			if !ok {
				printErr(out, path, err.Error())
				continue
			}
			printErr(out, path, fmt.Sprintf("%d issue(s)", len(iss)))
			printIssues(out, iss)
			continue
		}
		printOK(out, path, fmt.Sprintf("valid glTF %s (%d scenes, %d nodes, %d meshes)",
			doc.Asset().SchemaVersion(), len(doc.Scenes()), len(doc.Nodes()), len(doc.Meshes())))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) invalid", failed, len(args))
	}
	return nil
}
