package util

import (
	"fmt"
	"hash/crc32"
	"os"
)

// FileFingerprint returns the CRC32 of a file's contents as hex.
// It is meant for small files such as catalogs, which are read whole.
func FileFingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data)), nil
}
