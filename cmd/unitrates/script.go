package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/phanxgames/unitrates"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// markerRow is one marker in script output.
type markerRow struct {
	Creator     string  `json:"creator"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Major       bool    `json:"major"`
	Undo        bool    `json:"undo,omitempty"`
}

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Run a YAML or JSON input script against a scene and print its markers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := unitrates.LoadScript(data)
			if err != nil {
				return err
			}
			def, err := sceneDef()
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr())
			runner.SetLogger(&logger)
			scene, err := unitrates.NewShoppingScene(def, unitrates.ShoppingSceneOptions{Logger: &logger})
			if err != nil {
				return err
			}

			frames, err := runner.Run(scene, viper.GetFloat64("script.dt"), viper.GetInt("script.maxFrames"))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logger.Info().Int("frames", frames).Str("scene", def.Name).Msg("script finished")

			jsonOut, _ := cmd.Flags().GetBool("json")
			return printMarkers(cmd.OutOrStdout(), scene, jsonOut)
		},
	}
	cmd.Flags().String("scene", "apples", "Scene to run the script against")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func printMarkers(out io.Writer, scene *unitrates.ShoppingScene, jsonOut bool) error {
	line := scene.Line
	rows := make([]markerRow, 0, line.NumMarkers())
	for _, m := range line.Markers() {
		rows = append(rows, markerRow{
			Creator:     m.Creator().String(),
			Numerator:   m.Numerator.Value(),
			Denominator: m.Denominator.Value(),
			Major:       m.IsMajor(),
			Undo:        line.UndoMarker.Value() == m,
		})
	}
	if jsonOut {
		return json.NewEncoder(out).Encode(map[string]any{
			"scene":    scene.Def.Name,
			"quantity": scene.Scale.Quantity.Value(),
			"markers":  rows,
		})
	}

	fmt.Fprintf(out, "scene %s: %s on the scale\n", scene.Def.Name,
		line.DenominatorAxis.Format(scene.Scale.Quantity.Value()))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CREATOR\t%s\t%s\t\n", line.NumeratorAxis.UnitsLabel, line.DenominatorAxis.UnitsLabel)
	for i, r := range rows {
		undo := ""
		if r.Undo {
			undo = "(undo)"
		}
		m := line.Markers()[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Creator,
			line.NumeratorAxis.Format(m.Numerator.Value()),
			line.DenominatorAxis.Format(m.Denominator.Value()), undo)
	}
	return w.Flush()
}
