// pichide conceals arbitrary files inside the pixels of raster images and
// recovers them byte-exactly.
//
// Usage:
//
//	pichide encode -i carrier.png -e secret.bin -o out.png [--level low|medium|high]
//	pichide decode -i out.png [-o recovered.bin]
//	pichide survey [--scan dir]
//	pichide serve [--addr :8080]
package main

import (
	"log/slog"
	"os"

	"pichide/hide"
	"pichide/parallel"
	"pichide/server"
	"pichide/survey"

	"github.com/alecthomas/kong"
)

var cli struct {
	Encode hide.EncodeCmd `cmd:"" help:"Conceal a file inside a carrier image"`
	Decode hide.DecodeCmd `cmd:"" help:"Recover a concealed file from an image"`
	Survey survey.CLICmd  `cmd:"" help:"Report embedding capacity of images in a folder"`
	Serve  server.CLICmd  `cmd:"" help:"Serve the codec as an HTTP API"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("pichide"),
		kong.Description("Conceals arbitrary files inside the pixels of raster images."))

	pool := parallel.Start(0)
	if err := kctx.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("operation failed", "error", err)
		os.Exit(1)
	}
}
