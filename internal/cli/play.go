package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/session"
)

func (c *CLI) playCommand() *cobra.Command {
	var gen genFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Walk a dungeon in the terminal",
		Long: `Walk a generated dungeon from the start marker to the goal.

Move with the arrow keys, hjkl or wasd. Stepping on $ picks up the treasure;
stepping on > ends the run. Press n for a new dungeon, r to restart and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := gen.apply(cmd, c.config.Generator)
			if err != nil {
				return err
			}
			seed, err := gen.seedValue()
			if err != nil {
				return err
			}

			runner := c.newRunner(false)
			d, err := runner.Generate(ctx, pipeline.Options{Seed: seed, Config: cfg})
			if err != nil {
				return err
			}

			model := NewPlayModel(ctx, runner, cfg, session.Start(ctx, d))
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}

			state := final.(PlayModel).Session.State()
			if state.Ended {
				printSuccess("Reached the goal in %d moves (seed %d)", state.Moves, state.Seed)
			} else {
				printInfo("Left after %d moves (seed %d)", state.Moves, state.Seed)
			}
			printNextStep("Replay this dungeon", "roguegrid play --seed "+formatSeed(state.Seed))
			return nil
		},
	}

	addGenFlags(cmd, &gen, true)
	return cmd
}
