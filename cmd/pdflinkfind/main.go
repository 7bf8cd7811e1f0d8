package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RecoveryAshes/PdfLinkFind/internal/core"
	"github.com/RecoveryAshes/PdfLinkFind/internal/models"
	"github.com/RecoveryAshes/PdfLinkFind/internal/utils"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

// 命令行参数 (仅影响日志和配置,输入输出路径固定)
var (
	configFile string
	verbose    bool
	logLevel   string
)

// appConfig 在PersistentPreRunE中加载
var appConfig *core.Config

var rootCmd = &cobra.Command{
	Use:   "pdflinkfind",
	Short: "从MHTML网页快照中提取PDF链接",
	Long: `PdfLinkFind - 从单个MHTML网页快照中提取去重后的PDF链接

读取程序所在目录下的固定文件:
  输入: ` + InputFileName + `
  输出: ` + OutputFileName + `

链接按首次出现顺序去重,一行一个写入输出文件,并打印前5个链接预览。

版本: ` + Version + `
构建时间: ` + BuildTime,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config, err := core.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}

		logConfig := config.LogConfig()
		// 命令行参数覆盖配置文件
		if logLevel != "" {
			logConfig.Level = logLevel
		} else if verbose {
			logConfig.Level = "debug"
		}
		if verbose {
			logConfig.ConsoleLevel = "debug"
		}

		if err := utils.InitLogger(logConfig); err != nil {
			return fmt.Errorf("初始化日志系统失败: %w", err)
		}

		if verbose {
			utils.Info("详细模式已启用")
		}

		appConfig = config
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, outputPath, err := ResolvePaths()
		if err != nil {
			return err
		}

		var progressOut io.Writer
		if appConfig != nil && appConfig.Report.Progress {
			progressOut = cmd.ErrOrStderr()
		}

		reporter := utils.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
		extractor := core.NewExtractor(reporter, progressOut)

		if _, err := extractor.Run(inputPath, outputPath); err != nil {
			var readErr *models.ReadError
			if errors.As(err, &readErr) {
				// 读取失败: 控制台只输出一行错误,详细信息写入日志文件
				utils.ErrorToFile(readErr, "读取输入文件失败")
				reporter.PrintReadError(readErr.Cause)
				return nil
			}
			return fmt.Errorf("提取失败: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("PdfLinkFind %s\n", Version)
		fmt.Printf("构建时间: %s\n", BuildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出模式")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (trace|debug|info|warn|error)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
