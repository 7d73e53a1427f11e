package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/gltf"
	"github.com/reoring/gltf/i18n"
)

var (
	flagVerbose       bool
	flagLang          string
	flagMaxBytes      int64
	flagMaxDepth      int
	flagDuplicateKeys string
	flagProfile       string
	flagProfileDir    string

	logger   = zap.NewNop()
	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:          "gltfcheck",
	Short:        "Validate and inspect glTF 2.0 documents",
	SilenceUsage: true, // don't print usage on validation failures
	Long: `gltfcheck decodes glTF 2.0 JSON (or YAML) documents into a typed model,
checks every cross-reference between entities and reports each problem with
its JSON Pointer.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
		}
		i18n.SetLanguage(flagLang)
		return startProfile()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log import stages to stderr")
	pf.StringVar(&flagLang, "lang", "en", "issue message language (en|ja)")
	pf.Int64Var(&flagMaxBytes, "max-bytes", 0, "reject documents larger than this many bytes (0 = no limit)")
	pf.IntVar(&flagMaxDepth, "max-depth", 0, "reject documents nested deeper than this (0 = no limit)")
	pf.StringVar(&flagDuplicateKeys, "duplicate-keys", "ignore", "duplicate JSON key policy (ignore|warn|error)")
	pf.StringVar(&flagProfile, "profile", "", "write a profile of the run (cpu|mem)")
	pf.StringVar(&flagProfileDir, "profile-dir", ".", "directory for --profile output")
}

func startProfile() error {
	var mode func(*profile.Profile)
	switch flagProfile {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		return fmt.Errorf("invalid --profile %q: expected cpu or mem", flagProfile)
	}
	logger.Debug("profiling", zap.String("mode", flagProfile), zap.String("dir", flagProfileDir))
	profiler = profile.Start(mode, profile.ProfilePath(flagProfileDir), profile.NoShutdownHook, profile.Quiet)
	return nil
}

// Execute is called by main.go.
func Execute() {
	err := rootCmd.Execute()
	// post-run hooks are skipped when a command fails
	if profiler != nil {
		profiler.Stop()
	}
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// importOpt builds the import options from the persistent flags. Warnings
// are passed to warn.
func importOpt(warn func(gltf.Issue)) (gltf.ImportOpt, error) {
	opt := gltf.ImportOpt{MaxBytes: flagMaxBytes, MaxDepth: flagMaxDepth, OnWarning: warn}
	switch strings.ToLower(flagDuplicateKeys) {
	case "", "ignore":
		opt.Strictness.OnDuplicateKey = gltf.Ignore
	case "warn":
		opt.Strictness.OnDuplicateKey = gltf.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = gltf.Error
	default:
		return opt, fmt.Errorf("invalid --duplicate-keys %q: expected ignore, warn or error", flagDuplicateKeys)
	}
	return opt, nil
}

// loadDocument imports a file with the default capabilities. Files ending in
// .yaml or .yml are read as YAML.
func loadDocument(path string, opt gltf.ImportOpt) (*gltf.Document, error) {
	start := time.Now()
	log := logger.With(zap.String("file", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc *gltf.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		log.Debug("importing yaml")
		data, rerr := readAllLimited(f, opt.MaxBytes)
		if rerr != nil {
			return nil, rerr
		}
		doc, err = gltf.ImportYAML[gltf.NoExtensions, gltf.NoExtras](data, opt)
	default:
		log.Debug("importing json")
		doc, err = gltf.ImportReader[gltf.NoExtensions, gltf.NoExtras](f, opt)
	}
	if err != nil {
		if iss, ok := gltf.AsIssues(err); ok {
			log.Debug("import failed", zap.Int("issues", len(iss)), zap.Duration("took", time.Since(start)))
		}
		return nil, err
	}
	log.Debug("imported",
		zap.Int("nodes", len(doc.Nodes())),
		zap.Int("meshes", len(doc.Meshes())),
		zap.Duration("took", time.Since(start)),
	)
	return doc, nil
}

// readAllLimited reads r, stopping one byte past limit so oversized input is
// still detected by the importer.
func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	return io.ReadAll(r)
}
