// Package file provides filesystem-backed implementations of driven
// port interfaces, rooted at ~/.briefly by default.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: editable prompt files with embedded defaults
package file
