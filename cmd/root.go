package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagBaseURL      string
	flagCloudflare   bool

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
)

var rootCmd = &cobra.Command{
	Use:           "se8",
	Short:         "Browse and download comics from se8.us",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "site base URL (default https://se8.us/index.php)")
	rootCmd.PersistentFlags().BoolVar(&flagCloudflare, "cloudflare", false, "wrap the transport with the Cloudflare bypass")

	rootCmd.PersistentFlags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	rootCmd.PersistentFlags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	rootCmd.PersistentFlags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
