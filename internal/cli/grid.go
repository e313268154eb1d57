package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/pkg/pipeline"
)

func (c *CLI) gridCommand() *cobra.Command {
	var gen genFlags

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the macro grid of a dungeon",
		Long: `Print the coarse macro grid a dungeon is built on.

R marks a room, + a junction, # an unused cell; --- and | are corridor links.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gen.apply(cmd, c.config.Generator)
			if err != nil {
				return err
			}
			seed, err := gen.seedValue()
			if err != nil {
				return err
			}

			d, err := c.newRunner(false).Generate(cmd.Context(), pipeline.Options{Seed: seed, Config: cfg})
			if err != nil {
				return err
			}

			fmt.Print(d.Grid.String())
			printNewline()
			printKeyValue("seed", formatSeed(d.Seed))
			printKeyValue("rooms", strconv.Itoa(len(d.Rooms)))
			printKeyValue("junctions", strconv.Itoa(len(d.Junctions)))
			printKeyValue("links", strconv.Itoa(len(d.Grid.Edges())))
			printKeyValue("start", d.StartCell.String())
			printKeyValue("goal", fmt.Sprintf("%s (%d steps)", d.GoalCell, d.GoalDistance))

			var skipped []string
			for _, conn := range d.Connections {
				if conn.Skipped {
					skipped = append(skipped, fmt.Sprintf("%s - %s", conn.Edge.From, conn.Edge.To))
				}
			}
			if len(skipped) > 0 {
				printNewline()
				printWarning("%d links have no corridor (room too thin for a door)", len(skipped))
				for _, e := range skipped {
					printDetail("%s", e)
				}
			}
			return nil
		},
	}

	addGenFlags(cmd, &gen, true)
	return cmd
}

func formatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}
