package server

import (
	"log/slog"

	"pichide/entropy"
)

type CLICmd struct {
	Addr   string `help:"Listen address" default:":8080"`
	Origin string `help:"Allowed CORS origin" default:"http://localhost:3000"`
}

func (c *CLICmd) Run() error {
	router := Router(c.Origin, entropy.Uint32)
	slog.Info("serving", "addr", c.Addr, "origin", c.Origin)
	return router.Run(c.Addr)
}
