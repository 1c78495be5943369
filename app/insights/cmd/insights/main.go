package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/config"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/logger"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/render"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/storage"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "insights",
	Short:         "Culture radar insight renderer and assistant",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env 中的 OPENAI_API_KEY 需要在解析配置前加载
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		c, err := config.LoadConfigOrDefault(configPath)
		if err != nil {
			return fmt.Errorf("无法加载配置文件: %w", err)
		}
		if err := logger.InitLogger(c.Log.Level, c.Log.File); err != nil {
			return fmt.Errorf("无法初始化日志: %w", err)
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "config file path")
	rootCmd.AddCommand(renderCmd, brandsCmd, askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openStore() (*storage.Store, error) {
	store, err := storage.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("无法打开数据目录: %w", err)
	}
	return store, nil
}

func newRenderer() *render.Renderer {
	return render.NewRenderer(render.RenderContext{
		Palette:   cfg.Render.Palette,
		TitleSize: cfg.Render.TitleSize,
	})
}
