package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ScreenshotBase is the file name stem used for saved screenshots.
const ScreenshotBase = "Screenshot"

// NextScreenshotPath returns the first unused screenshot path in dir:
// Screenshot.png, then Screenshot1.png, Screenshot2.png and so on. The
// directory is created when missing, which is reported through created.
func NextScreenshotPath(dir string) (path string, created bool, err error) {
	if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", false, fmt.Errorf("raster: create %s: %w", dir, err)
		}
		created = true
	}

	for i := 0; ; i++ {
		name := ScreenshotBase
		if i > 0 {
			name += strconv.Itoa(i)
		}
		path = filepath.Join(dir, name+".png")
		_, statErr := os.Stat(path)
		if os.IsNotExist(statErr) {
			return path, created, nil
		}
		if statErr != nil {
			return "", created, fmt.Errorf("raster: %w", statErr)
		}
	}
}
