package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"safetravelbuddy/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	config  *viper.Viper

	isDevEnv  bool
	isTestEnv bool

	yellow       = color.New(color.FgYellow).SprintFunc()
	red          = color.New(color.FgRed).SprintFunc()
	warningLabel = yellow("Warning:")
)

// rootCmd represents the base command when called without any subcommands.
// Initialized here so the subcommand files can attach to it from their
// own init functions.
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "safetravelbuddy",
		Short: `safetravelbuddy keeps a one-tap emergency SOS ready for your journeys.

Register an account, login, and 'sos' will capture your location, compose an
emergency message and open a chat pre-filled with it - to a broadcast link or
to one of your saved contacts.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.safetravelbuddy.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")
	cmd.PersistentFlags().BoolVarP(&isTestEnv, "test", "", false, "run in test mode")

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config = viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir()
		cobra.CheckErr(err)

		// If config file is not found, create one using defaultConfigValue
		configFilePath := filepath.Join(configDir, configName)
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			err = ioutil.WriteFile(configFilePath, []byte(defaultConfigValue()), 0600)
			cobra.CheckErr(err)
		}

		// Search config in home directory with name ".safetravelbuddy" (without extension).
		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	config.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", config.ConfigFileUsed())
	}
}

func defaultCfgNameAndDir() (configName string, configDir string, err error) {
	configName = ".safetravelbuddy.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if isDevEnv || isTestEnv {
		configName = ".safetravelbuddy.dev.yaml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}

		if isTestEnv {
			configName = ".safetravelbuddy.yaml"
			configDir = filepath.Join(configDir, "test-fixtures")
		}
	}

	return configName, configDir, err
}

// defaultConfigValue returns the default content for .safetravelbuddy.yaml
func defaultConfigValue() string {
	return `api:
  baseURL: "http://localhost:8081"

# How 'sos' figures out where you are.
# provider can be:
# - geoip: approximate position from your public ip (default)
# - static: fixed coordinates from the 'static' section below
# - none: no location capability on this machine
location:
  provider: "geoip"
  geoipEndpoint: "http://ip-api.com/json"
  highAccuracy: true
  static:
    latitude: 0
    longitude: 0

# Your emergency contacts. Replace the placeholder numbers with real
# ones(country code first, digits only).
contacts:
- name: Mom
  phone: "91XXXXXXXX01"
- name: Dad
  phone: "91XXXXXXXX02"
- name: Sister/Brother
  phone: "91XXXXXXXX03"
- name: Friend
  phone: "91XXXXXXXX04"
`
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(red(format), a...)
}
