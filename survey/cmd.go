// Package survey reports how much payload the images in a folder could
// carry at each encoding level, without modifying anything.
package survey

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"pichide/carrier"
	"pichide/parallel"
	"pichide/stego"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Scan string `help:"Folder of candidate carrier images" default:"."`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var surveyedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				imgFile, err := os.Open(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not open image", "error", err)
					return
				}

				imgConf, _, err := image.DecodeConfig(imgFile)
				if closeErr := imgFile.Close(); closeErr != nil {
					logger.Error("could not close image", "error", closeErr)
				}
				if err != nil {
					errCount.Add(1)
					logger.Error("could not read image", "error", err)
					return
				}

				slots := imgConf.Width * imgConf.Height * carrier.Channels
				logger.Info("capacity",
					"size", fmt.Sprintf("%dx%d", imgConf.Width, imgConf.Height),
					"low", stego.MaxPayload(slots, stego.LevelLow),
					"medium", stego.MaxPayload(slots, stego.LevelMedium),
					"high", stego.MaxPayload(slots, stego.LevelHigh))
				surveyedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	surveyed := surveyedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "surveyed", surveyed, "errors", errors, "total", surveyed+errors)

	if errors > 0 {
		return fmt.Errorf("error surveying %d files", errors)
	}
	return nil
}
