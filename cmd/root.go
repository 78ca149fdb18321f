// Package cmd wires the txcv command line surface to the credential manager
// and the translation backend.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/txcv/cli/internal/auth"
	"github.com/txcv/cli/internal/interact"
	"github.com/txcv/cli/internal/lang"
	"github.com/txcv/cli/internal/render"
	"github.com/txcv/cli/internal/tmt"
	"github.com/txcv/cli/internal/translate"
)

var (
	// Command line flags; source, target and color are read back through
	// viper so config file and environment values share one lookup path.
	cfgFile    string
	clearCreds bool

	version = "1.1.0" // This will be set during build
)

// newStore returns the credential store; overridable in tests.
var newStore = auth.SystemStore

// newBackend builds the translation backend from loaded credentials;
// overridable in tests.
var newBackend = func(creds auth.Credentials) (translate.API, error) {
	return tmt.NewClient(creds)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txcv [words]...",
	Short: "Translate words with Tencent Cloud Machine Translation",
	Long: `txcv translates words and phrases between Chinese, English and Japanese
using the Tencent Cloud Machine Translation API.

On first run it prompts for a Tencent Cloud secret id, secret key and region
and stores them in the system keyring.

Examples:
  txcv hello                       # auto-detect, prints "hello -> 你好"
  txcv -s english -t japanese cat  # fixed language pair
  txcv                             # interactive prompt loop
  txcv --clear                     # forget stored credentials`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

func run(cmd *cobra.Command, args []string) error {
	source, err := lang.Parse(viper.GetString("source"))
	if err != nil {
		return err
	}
	target, err := lang.Parse(viper.GetString("target"))
	if err != nil {
		return err
	}
	mode, err := render.ParseMode(viper.GetString("color"))
	if err != nil {
		return err
	}
	render.Apply(mode)

	manager := auth.NewManager(newStore(), auth.TerminalPrompter{
		DefaultRegion: viper.GetString("region"),
	})

	if clearCreds {
		if err := manager.Clear(); err != nil {
			return err
		}
		fmt.Println("Credentials removed")
		return nil
	}

	creds, err := manager.LoadOrPrompt()
	if err != nil {
		return err
	}

	backend, err := newBackend(creds)
	if err != nil {
		return err
	}
	translator := translate.New(backend, source, target)

	if len(args) == 0 {
		return interact.Run(cmd.Context(), translator)
	}

	results, err := translator.Batch(cmd.Context(), args)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Println(render.Line(res))
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.txcv.yaml)")
	rootCmd.Flags().BoolVarP(&clearCreds, "clear", "c", false, "Remove stored credentials and exit")
	rootCmd.Flags().StringP("source", "s", "", "Source language: chinese, english, japanese (default: auto-detect)")
	rootCmd.Flags().StringP("target", "t", "", "Target language: chinese, english, japanese (default: auto-select)")
	rootCmd.Flags().String("color", "auto", "Colored output: always, auto, disable")

	viper.BindPFlag("source", rootCmd.Flags().Lookup("source"))
	viper.BindPFlag("target", rootCmd.Flags().Lookup("target"))
	viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
}

// initConfig reads in the optional config file and TXCV_* environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".txcv" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".txcv")
	}

	viper.SetDefault("region", "ap-shanghai")

	viper.SetEnvPrefix("TXCV")
	viper.AutomaticEnv()

	// The config file is optional
	_ = viper.ReadInConfig()
}
