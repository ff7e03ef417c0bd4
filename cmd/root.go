/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-eda",
	Short: "Explores a table of track audio features",
	Long: `Loads a CSV (or SQLite table) of tracks with their audio features and prints
summaries: top tracks per feature, value counts, correlations and distributions.
Every command can be narrowed to one artist with --artist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return startSession()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the command tree and ends the session even when a command fails.
func execute() error {
	defer endSession()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-eda.yaml)")

	rootCmd.PersistentFlags().StringP("data", "d", "./data.csv", "Path to the track CSV or SQLite database")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.PersistentFlags().String("table", "tracks", "Table to read when --data is a SQLite database")
	viper.BindPFlag("table", rootCmd.PersistentFlags().Lookup("table"))

	rootCmd.PersistentFlags().StringP("artist", "a", dataset.AllArtists, "Only consider tracks by this artist")
	viper.BindPFlag("artist", rootCmd.PersistentFlags().Lookup("artist"))

	rootCmd.PersistentFlags().Bool("dedupe", false, "Drop tracks repeating an earlier (song_title, artist) pair")
	viper.BindPFlag("dedupe", rootCmd.PersistentFlags().Lookup("dedupe"))

	rootCmd.PersistentFlags().String("log_level", "warn", "Log level (debug, info, warn, error)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-eda" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-eda")
	}

	// SPOTIFY_EDA_DATA, SPOTIFY_EDA_ARTIST, ...
	viper.SetEnvPrefix("spotify_eda")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}
