//go:build darwin
// +build darwin

package clipboard

import "github.com/atotto/clipboard"

// Copy uses the system pasteboard on macOS.
func Copy(text string) error {
	return clipboard.WriteAll(text)
}
