package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/unitrates"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive window",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr())
			width := viper.GetInt("window.width")
			height := viper.GetInt("window.height")

			ov := &overlay{
				ShowFPS: viper.GetBool("debug"),
				Dir:     viper.GetString("screenshotDir"),
				label:   viper.GetString("scene"),
				log:     logger,
			}

			var game ebiten.Game
			title := "Unit Rates"
			if race, _ := cmd.Flags().GetBool("race"); race {
				ov.label = "race"
				game = newRaceGame(logger, width, height, ov)
				title += ": Racing Lab"
			} else {
				def, err := sceneDef()
				if err != nil {
					return err
				}
				scene, err := unitrates.NewShoppingScene(def, unitrates.ShoppingSceneOptions{Logger: &logger})
				if err != nil {
					return err
				}
				game = newShoppingGame(scene, width, height, viper.GetBool("showAnswers"), ov, logger)
				title += ": " + def.Name
			}

			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowTitle(title)
			logger.Info().Str("title", title).Msg("starting")
			if err := ebiten.RunGame(game); err != nil {
				return fmt.Errorf("run game: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("scene", "apples", "Shopping scene to open")
	cmd.Flags().Bool("race", false, "Open the racing lab instead of a shopping scene")
	cmd.Flags().Bool("show-answers", false, "Show question answers")
	cmd.Flags().Bool("debug", false, "Show FPS and TPS")
	return cmd
}
