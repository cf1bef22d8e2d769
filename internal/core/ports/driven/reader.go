package driven

import "github.com/custodia-labs/briefly-cli/internal/core/domain"

// DocumentReader converts a source file into plain text. The output is
// treated as untrusted, layout-lossy text: line breaks are the only
// structural signal the core may rely on.
type DocumentReader interface {
	// Read returns the plain-text content of the referenced file.
	Read(ref domain.FileRef) (string, error)
}
