//go:build tools

package tools

// CLI tools used during development. Not compiled into any binary.
//
//   - github.com/matryer/moq generates the *_mock_test.go files
//     (see the //go:generate lines next to each consumer interface).
//   - github.com/pressly/goose/v3/cmd/goose can be used instead of cmd/migrate
//     against the SQL files in migrations/.
