package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahaj33-op/sbextract/internals/cmdlog"
	"github.com/sahaj33-op/sbextract/internals/credentials"
	"github.com/sahaj33-op/sbextract/internals/hypixel"
	"github.com/sahaj33-op/sbextract/internals/ownhttp"
)

// Version and Commit are set by main (goreleaser fills them in)
var (
	Version string
	Commit  string
)

var logger = cmdlog.New()

var (
	globalDir      string
	credStore      *credentials.Store
	disableColors  bool
	profileFlag    string
	unattendedFlag bool
	zipFlag        bool
)

// rootCmd runs one extraction batch when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "sbextract [username]",
	Short: "Extract Hypixel SkyBlock profile data to local JSON files",
	Long: `sbextract fetches a player's SkyBlock profiles from the Hypixel API
and writes every data category to its own JSON file, ready for manual or
AI-assisted analysis.`,
	Example: `
  sbextract Technoblade
  sbextract Technoblade --profile Apple
  sbextract Technoblade -u --zip`,
	Args: cobra.MaximumNArgs(1),
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Args:  cobra.MaximumNArgs(1),
	Short: "Output shell completion code for bash",
	Long: `To load completion run

. <(sbextract completion)

You can add that line to your ~/.bashrc or ~/.profile to
persist completion in your shell.
`,
	Run: func(cmd *cobra.Command, args []string) {
		rootCmd.GenBashCompletion(os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.Version = versionString()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func versionString() string {
	if Version == "" {
		return "dev"
	}
	if Commit != "" {
		return Version + " (" + Commit + ")"
	}
	return Version
}

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		panic(err)
	}
	globalDir = filepath.Join(configDir, "sbextract")

	credStore, err = credentials.New(globalDir)
	if err != nil {
		logger.Warn("Could not read stored credentials: " + err.Error())
		credStore = &credentials.Store{Dir: globalDir}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&disableColors, "no-color", false, "disable color output")
	rootCmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "profile name to extract (skips the chooser)")
	rootCmd.Flags().BoolVarP(&unattendedFlag, "unattended", "u", false, "never prompt for input; fail instead")
	rootCmd.Flags().BoolVar(&zipFlag, "zip", false, "zip the output directory when done")
	rootCmd.Flags().String("key", "", "Hypixel API key (overrides the stored one)")
	rootCmd.Flags().String("api-base", hypixel.DefaultAPIURL, "Hypixel API base url")
	rootCmd.Flags().StringP("output", "o", ".", "directory to create the extraction folder in")

	viper.BindPFlag("apiKey", rootCmd.Flags().Lookup("key"))
	viper.BindPFlag("apiBase", rootCmd.Flags().Lookup("api-base"))
	viper.BindPFlag("outputDir", rootCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(completionCmd)
}

// initConfig reads in the config file and SBEXTRACT_* environment variables
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		cmdlog.DisableColors()
	}

	viper.SetDefault("rateLimit", ownhttp.DefaultInterval)
	viper.SetDefault("nonInteractive", false)

	viper.SetConfigName("config")
	viper.AddConfigPath(globalDir)
	viper.SetEnvPrefix("sbextract")
	viper.AutomaticEnv()

	// no config file is fine
	_ = viper.ReadInConfig()
}
