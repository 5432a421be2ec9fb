package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbose   bool
	streaming bool
	maxDepth  int
)

var rootCmd = &cobra.Command{
	Use:   "actson",
	Short: "actson is a non-blocking, event-based JSON parser",
	Long: `actson drives the actson.Parser event engine over stdin or a file,
either printing the raw event stream or building and printing a value tree.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and runs it. It's
// called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.actson.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&streaming, "streaming", false, "accept a sequence of top-level JSON values instead of exactly one")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 uses the library default)")

	_ = viper.BindPFlag("streaming", rootCmd.PersistentFlags().Lookup("streaming"))
	_ = viper.BindPFlag("max-depth", rootCmd.PersistentFlags().Lookup("max-depth"))

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".actson")
	}

	viper.SetEnvPrefix("actson")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("loaded config file")
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of actson",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("actson v0.1.0")
	},
}
