package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/logger"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/render"
)

var (
	renderBrand  string
	renderStudy  string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one brand study to a standalone HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		bundle, err := store.Bundle(renderBrand, renderStudy)
		if err != nil {
			return err
		}

		page, err := newRenderer().Page(bundle, renderBrand, renderStudy)
		if err != nil {
			return fmt.Errorf("render %s/%s: %w", renderBrand, renderStudy, err)
		}
		if err := render.WriteHTMLFile(renderOutput, page); err != nil {
			return err
		}

		logger.Log.Infof("报告已生成: %s", renderOutput)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderBrand, "brand", "", "brand name (data sub-directory)")
	renderCmd.Flags().StringVar(&renderStudy, "study", "", "study name (json file stem)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "output/index.html", "output html file")
	_ = renderCmd.MarkFlagRequired("brand")
	_ = renderCmd.MarkFlagRequired("study")
}
