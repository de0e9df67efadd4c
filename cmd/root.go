package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/launchplot/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "launchplot",
	Short: "Cumulative launch statistics and charts",
	Long: "Launchplot parses launch-log text files, derives orbital energy and delta-v " +
		"for every successful launch, and renders cumulative per-group step charts.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func Execute() {
	defer log.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Close()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .launchplot.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".launchplot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LAUNCHPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// setupLogging points the process logger at the configured file and level.
func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetVerbose(viper.GetBool("verbose"))
	if name := viper.GetString("log_file"); name != "" {
		if err := log.SetFileOutput(name); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("loaded config", "file", used)
	}
	return nil
}
