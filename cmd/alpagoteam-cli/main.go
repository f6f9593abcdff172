package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/1970jjh/alpagoteam/internal/game"
)

const (
	releaseVersion = "0.1.0"
)

type Config struct {
	json    bool
	noColor bool
}

func main() {
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ALPAGOTEAM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "alpagoteam-cli",
		Short:         "Score a 20-cell board from the command line.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
	}

	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.BoolVar(&cfg.json, "json", false, "print the evaluation as JSON (env: ALPAGOTEAM_JSON)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored groups (env: ALPAGOTEAM_NO_COLOR)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.AddCommand(newScoreCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("alpagoteam-cli v{{.Version}}\n")

	return cmd
}

func newScoreCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "score CELL...",
		Short: "Score a board given as cells: numbers, J for a joker, _ or - for empty.",
		Example: `  alpagoteam-cli score 9 J 1 2
  alpagoteam-cli score 1 2 _ 5 J 3 --json`,
		Args: cobra.RangeArgs(1, game.Size),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseArgs(args)
			if err != nil {
				return err
			}
			res := game.Evaluate(b)

			out := cmd.OutOrStdout()
			if cfg.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Board game.Board `json:"board"`
					game.Result
				}{b, res})
			}
			_, err = fmt.Fprint(out, render(b, res, cfg.noColor))
			return err
		},
	}
}

// parseArgs turns positional arguments into a board; argument k fills cell k.
func parseArgs(args []string) (game.Board, error) {
	if len(args) > game.Size {
		return game.Board{}, fmt.Errorf("at most %d cells, got %d", game.Size, len(args))
	}
	slots := make(map[int]game.Cell, len(args))
	for i, a := range args {
		c, err := game.ParseCell(a)
		if err != nil {
			return game.Board{}, fmt.Errorf("cell %d: %w", i, err)
		}
		slots[i] = c
	}
	return game.Normalize(slots), nil
}
