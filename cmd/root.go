package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/consultquest/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "consultquest",
	Short: "Scenario training for consultants",
	Long:  "ConsultQuest is a terminal quiz that walks new consultants through client and team scenarios and awards a certificate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override config.FromEnv.
func addConfigFlags(pf *pflag.FlagSet) {
	pf.String("bank", "", "Path to a YAML or JSON question bank (overrides CONSULTQUEST_BANK)")
	pf.String("cert-dir", "", "Directory for exported certificates (overrides CONSULTQUEST_CERT_DIR)")
	pf.String("cert-format", "", "Certificate file format: md or json (overrides CONSULTQUEST_CERT_FORMAT)")
	pf.Uint64("seed", 0, "Seed for option shuffling (overrides CONSULTQUEST_SEED)")
	pf.String("name", "", "Name printed on the certificate (overrides CONSULTQUEST_NAME)")
	pf.String("log-file", "", "Log file path, or \"off\" (overrides CONSULTQUEST_LOG_FILE)")
	pf.Bool("debug", false, "Enable debug logging (overrides CONSULTQUEST_DEBUG)")
}

// resolveConfig reads the environment and then applies any flags the user
// set explicitly, so flags win over env vars and env vars over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("bank") {
		cfg.BankPath, _ = flags.GetString("bank")
	}
	if flags.Changed("cert-dir") {
		cfg.CertDir, _ = flags.GetString("cert-dir")
	}
	if flags.Changed("cert-format") {
		cfg.CertFormat, _ = flags.GetString("cert-format")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Seed = &seed
	}
	if flags.Changed("name") {
		cfg.Recipient, _ = flags.GetString("name")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	return cfg, cfg.Validate()
}
