package assets

import (
	_ "embed"
)

// DefaultLexiconYAML contains the embedded default lexicon: vocabulary pools,
// the synonym table and the template catalog the generator draws from.
//
//go:embed defaults/lexicon.yaml
var DefaultLexiconYAML []byte

// DefaultAuditYAML contains the embedded default label-audit rules.
//
//go:embed defaults/audit.yaml
var DefaultAuditYAML []byte
