// Package hide implements the encode and decode commands.
package hide

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"pichide/carrier"
	"pichide/entropy"
	"pichide/stego"

	"github.com/alecthomas/kong"
)

type EncodeCmd struct {
	Input  string `short:"i" required:"" type:"existingfile" help:"Carrier image to embed into"`
	Embed  string `short:"e" required:"" type:"existingfile" help:"File to conceal"`
	Output string `short:"o" required:"" help:"Destination image (png, bmp or tiff)"`
	Level  string `short:"l" enum:"low,medium,high" default:"low" help:"Embedding density"`

	level stego.EncodingLevel
}

func (c *EncodeCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.level, err = stego.ParseLevel(c.Level); err != nil {
		return err
	}

	if name := filepath.Base(c.Embed); len(name) > stego.NameSize {
		return fmt.Errorf("%w: %q", stego.ErrNameTooLong, name)
	}
	return nil
}

func (c *EncodeCmd) Run() error {
	pix, err := carrier.Load(c.Input)
	if err != nil {
		return err
	}

	logger := slog.Default().With("image", c.Input)
	logger.Info("carrier loaded",
		"width", pix.Width(), "height", pix.Height(), "level", c.level.String())

	payload, err := readPayload(c.Embed)
	if err != nil {
		return err
	}

	slots := pix.Slots()
	logger.Info("capacity",
		"max", dataSize(stego.MaxPayload(len(slots), c.level)),
		"embed", dataSize(len(payload)))

	name := filepath.Base(c.Embed)
	if err := stego.Embed(slots, c.level, name, payload, entropy.Uint32); err != nil {
		return err
	}
	logger.Info("embedded", "name", name)

	if err := pix.Save(c.Output); err != nil {
		return err
	}

	logger.Info("wrote carrier", "output", c.Output)
	return nil
}

type DecodeCmd struct {
	Input  string `short:"i" required:"" type:"existingfile" help:"Image to extract from"`
	Output string `short:"o" help:"Destination file, defaults to the embedded name"`
}

func (c *DecodeCmd) Run() error {
	pix, err := carrier.Load(c.Input)
	if err != nil {
		return err
	}

	logger := slog.Default().With("image", c.Input)
	logger.Info("carrier loaded", "width", pix.Width(), "height", pix.Height())

	header, payload, err := stego.Extract(pix.Slots())
	if err != nil {
		return err
	}

	logger.Info("detected embed",
		"name", header.Name, "level", header.Level.String(), "size", dataSize(len(payload)))

	output := c.Output
	if output == "" {
		// The embedded name is untrusted input, never let it escape the
		// working directory.
		output = filepath.Base(header.Name)
		if output == "." || output == string(filepath.Separator) {
			return fmt.Errorf("embedded name %q is unusable as an output path, pass --output", header.Name)
		}
	}

	if err := writeFile(output, payload); err != nil {
		return err
	}

	logger.Info("recovered", "output", output)
	return nil
}

// dataSize formats a byte count for log output.
func dataSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
