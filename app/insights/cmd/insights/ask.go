package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/chat"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/logger"
)

var (
	askDeep  bool
	askBrand string
	askStudy string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant about cultural trends and market insights",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		opts := chat.AskOptions{
			Deep: askDeep,
			Progress: func(status string, progress int) {
				logger.Log.Debugf("ask: %s (%d%%)", status, progress)
			},
		}
		if askBrand != "" {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			bundle, err := store.Bundle(askBrand, askStudy)
			if err != nil {
				return err
			}
			opts.SystemContext = bundle.AIContext.SystemContext
			opts.ResearchFile = bundle.AIContext.ResearchFile
		}

		assistant, err := chat.NewAssistant(ctx, cfg)
		if err != nil {
			return err
		}
		ans, err := assistant.Ask(ctx, strings.Join(args, " "), opts)
		if err != nil {
			return err
		}

		out := ans.Body
		if !ans.Deep {
			out = "#### 💡 Cultural Insights & Recommendations\n\n" + out
		}
		if ans.Sources != "" {
			out += "\n\n" + ans.Sources
		}

		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("failed to init markdown renderer: %w", err)
		}
		rendered, err := r.Render(out)
		if err != nil {
			// 终端渲染失败时输出原始 markdown
			rendered = out
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askDeep, "deep", false, "use the study's research file when available")
	askCmd.Flags().StringVar(&askBrand, "brand", "", "brand whose assistant context is used")
	askCmd.Flags().StringVar(&askStudy, "study", "", "study whose assistant context is used")
	askCmd.MarkFlagsRequiredTogether("brand", "study")
}
