package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		gen  genFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dungeons and play sessions over HTTP",
		Long: `Start the HTTP API.

  GET  /healthz
  GET  /dungeons/{seed}?format=json|text|wide|ansi|dot|svg|png
  POST /sessions              {"seed": 42}
  GET  /sessions/{id}
  POST /sessions/{id}/moves   {"direction": "left"}
  GET  /sessions/{id}/stream  websocket: send {"direction": ...} frames`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gen.apply(cmd, c.config.Generator)
			if err != nil {
				return err
			}
			srvCfg := c.config.Server
			if cmd.Flags().Changed("addr") || srvCfg.Addr == "" {
				srvCfg.Addr = addr
			}
			srvCfg.Generator = cfg

			srv := server.New(srvCfg, c.Logger, nil)
			printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(srv.Addr())))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	addGenFlags(cmd, &gen, false)
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	return cmd
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
