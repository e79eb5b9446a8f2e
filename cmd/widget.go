package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	topColor, middleColor, usernameColor, certifiedColor, dataColor, labelColor string
	avatarBG, leftColor, leftTextColor, rightColor, rightTextColor             string
)

// widgetCmd represents the widget command
var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Build widget image URLs",
}

var widgetLargeCmd = &cobra.Command{
	Use:   "large <bot-id>",
	Short: "Build a large widget URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		botID, err := parseID("bot ID", args[0])
		if err != nil {
			return err
		}

		w := dblClient.LargeWidget(botID)
		flags := cmd.Flags()
		if flags.Changed("top") {
			w.TopColor(topColor)
		}
		if flags.Changed("middle") {
			w.MiddleColor(middleColor)
		}
		if flags.Changed("username") {
			w.UsernameColor(usernameColor)
		}
		if flags.Changed("certified") {
			w.CertifiedColor(certifiedColor)
		}
		if flags.Changed("data") {
			w.DataColor(dataColor)
		}
		if flags.Changed("label") {
			w.LabelColor(labelColor)
		}

		u, err := w.Build()
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

var widgetSmallCmd = &cobra.Command{
	Use:   "small <bot-id>",
	Short: "Build a small widget URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		botID, err := parseID("bot ID", args[0])
		if err != nil {
			return err
		}

		w := dblClient.SmallWidget(botID)
		flags := cmd.Flags()
		if flags.Changed("avatar-bg") {
			w.AvatarBackground(avatarBG)
		}
		if flags.Changed("left") {
			w.LeftColor(leftColor)
		}
		if flags.Changed("left-text") {
			w.LeftTextColor(leftTextColor)
		}
		if flags.Changed("right") {
			w.RightColor(rightColor)
		}
		if flags.Changed("right-text") {
			w.RightTextColor(rightTextColor)
		}

		u, err := w.Build()
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

func init() {
	widgetLargeCmd.Flags().StringVar(&topColor, "top", "", "top colour")
	widgetLargeCmd.Flags().StringVar(&middleColor, "middle", "", "middle colour")
	widgetLargeCmd.Flags().StringVar(&usernameColor, "username", "", "username colour")
	widgetLargeCmd.Flags().StringVar(&certifiedColor, "certified", "", "certified badge colour")
	widgetLargeCmd.Flags().StringVar(&dataColor, "data", "", "data colour")
	widgetLargeCmd.Flags().StringVar(&labelColor, "label", "", "label colour")

	widgetSmallCmd.Flags().StringVar(&avatarBG, "avatar-bg", "", "avatar background colour")
	widgetSmallCmd.Flags().StringVar(&leftColor, "left", "", "left colour")
	widgetSmallCmd.Flags().StringVar(&leftTextColor, "left-text", "", "left text colour")
	widgetSmallCmd.Flags().StringVar(&rightColor, "right", "", "right colour")
	widgetSmallCmd.Flags().StringVar(&rightTextColor, "right-text", "", "right text colour")

	widgetCmd.AddCommand(widgetLargeCmd, widgetSmallCmd)
	rootCmd.AddCommand(widgetCmd)
}
