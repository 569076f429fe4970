package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sri-geospace/repoasset/internal/app"
	"github.com/sri-geospace/repoasset/internal/config"
	"github.com/sri-geospace/repoasset/internal/domain"
	"github.com/sri-geospace/repoasset/internal/utils"
	"github.com/sri-geospace/repoasset/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repoasset",
	Short: "Download asset subtrees from a source repository",
	Long: `repoasset fetches the main-branch archive of a source repository over
HTTPS and extracts one of its asset subtrees (tutorials or docs) into the
current directory, stripping the archive's top-level directory.`,
	Version:       version.Short(),
	SilenceErrors: true,
}

var downloadCmd = &cobra.Command{
	Use:       "download <asset>",
	Short:     "Download an asset into the current directory",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: domain.AssetNames(),
	RunE:      runDownload,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("repo", "r", config.DefaultRepo, "Source repository (owner/name)")
	rootCmd.PersistentFlags().IntP("timeout", "t", int(config.DefaultTimeout/time.Second), "Download timeout in seconds")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational messages")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	_ = viper.BindPFlag("download.repo", rootCmd.PersistentFlags().Lookup("repo"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; a failure now is a handler
	// failure, not a usage error.
	cmd.SilenceUsage = true

	asset, err := domain.ParseAsset(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The timeout flag is whole seconds; convert here rather than binding
	// the int flag over the duration-typed config key.
	if seconds, ferr := cmd.Flags().GetInt("timeout"); ferr == nil && cmd.Flags().Changed("timeout") {
		cfg.Download.Timeout = time.Duration(seconds) * time.Second
	}

	logLevel := cfg.Logging.Level
	if cfg.Quiet {
		logLevel = "error"
	}
	logger := utils.NewLogger(utils.LoggerOptions{Level: logLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	downloader := app.NewDownloader(app.DownloaderOptions{
		Repo:     domain.Repository(cfg.Download.Repo),
		Branch:   cfg.Download.Branch,
		Timeout:  cfg.Download.Timeout,
		Quiet:    cfg.Quiet,
		Progress: os.Stderr,
		Logger:   logger,
	})

	return downloader.Run(ctx, asset)
}
