// Package binary classifies files as binary or text before their content is emitted.
package binary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SampleSize is the number of leading bytes inspected for content classification.
const SampleSize = 1024

// nonTextThreshold is the fraction of disallowed bytes above which a sample is binary.
const nonTextThreshold = 0.30

// extensions lists formats that are binary regardless of content.
var extensions = map[string]struct{}{
	// Images
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".svg": {}, ".ico": {}, ".webp": {}, ".tiff": {}, ".tif": {},
	// Video
	".mp4": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".webm": {}, ".mkv": {}, ".m4v": {},
	// Audio
	".mp3": {}, ".wav": {}, ".flac": {}, ".aac": {}, ".ogg": {}, ".wma": {}, ".m4a": {},
	// Archives
	".zip": {}, ".rar": {}, ".7z": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {},
	// Documents
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	// Executables
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".bin": {}, ".app": {}, ".deb": {}, ".rpm": {}, ".msi": {},
	// Fonts
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	// Databases
	".db": {}, ".sqlite": {}, ".sqlite3": {}, ".mdb": {},
	// Disk images
	".iso": {}, ".img": {}, ".dmg": {}, ".toast": {}, ".vcd": {},
}

// textBytes marks the byte values tolerated in text files.
var textBytes = func() [256]bool {
	var table [256]bool
	for _, b := range []byte{0x07, 0x08, '\t', '\n', '\f', '\r', 0x1b} {
		table[b] = true
	}
	for b := 0x20; b <= 0xff; b++ {
		table[b] = b != 0x7f
	}
	return table
}()

// ErrUnreadable wraps failures to open or sample a file.
var ErrUnreadable = errors.New("binary: file unreadable")

// HasBinaryExtension reports whether the file name carries a denylisted extension.
func HasBinaryExtension(name string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// IsBinary classifies a content sample: any null byte, or more than 30% of
// bytes outside the text set, makes it binary. An empty sample is text.
func IsBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	disallowed := 0
	for _, b := range sample {
		if b == 0 {
			return true
		}
		if !textBytes[b] {
			disallowed++
		}
	}
	return float64(disallowed)/float64(len(sample)) > nonTextThreshold
}

// IsFileBinary checks the extension denylist first, then samples up to
// SampleSize bytes. A file that cannot be read is reported as binary together
// with an error wrapping ErrUnreadable so callers can count it as a read failure.
func IsFileBinary(path string) (bool, error) {
	if HasBinaryExtension(path) {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	buf := make([]byte, SampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return true, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return IsBinary(buf[:n]), nil
}
