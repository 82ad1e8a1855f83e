//go:build windows
// +build windows

package clipboard

import "github.com/atotto/clipboard"

// Copy writes to the Windows clipboard.
func Copy(text string) error {
	return clipboard.WriteAll(text)
}
