package gltf

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// ImportOpt bundles import options. The zero value imports with no size or
// depth limits, ignores duplicate keys and reports every issue found.
type ImportOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	// FailFast stops at the first issue instead of collecting all of them.
	FailFast bool
	// RequireSupported rejects documents whose extensionsRequired names an
	// extension the Extensions capability does not list in Supported.
	RequireSupported bool
	// OnWarning receives non-fatal issues, such as duplicate keys under Warn.
	OnWarning func(Issue)
}

func lastOpt(opts []ImportOpt) ImportOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ImportOpt{}
}
