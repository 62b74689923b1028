/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colortally/image"
	"github.com/mmuldo/colortally/report"
)

const defaultPath = "public/images/logos/pair-logo-full-light.png"

var (
	cfgFile string
	verbose bool
)

// settings holds everything a single run needs.
type settings struct {
	path     string
	top      int
	minR     uint8
	minG     uint8
	minB     uint8
	quantize int
	line     string
	title    string
	lab      bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colortally [image]",
	Short: "Reports the most common tan colors in an image",
	Long: `Counts every pixel of an image whose red, green and blue channels are all
above the configured thresholds and prints the most frequent exact colors.

With no image argument the configured path is analyzed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			s.path = args[0]
		}
		return run(cmd.OutOrStdout(), s)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colortally.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log configuration details")

	f := rootCmd.Flags()
	f.IntP("top", "n", image.DefaultTop, "number of colors to report")
	f.Uint8("min-red", 200, "red must be greater than this")
	f.Uint8("min-green", 200, "green must be greater than this")
	f.Uint8("min-blue", 180, "blue must be greater than this")
	f.Int("quantize", 0, "quantize to this many colors before counting (0 disables)")
	f.String("template", "", "pongo2 template for each line")
	f.String("title", "", "line printed before the colors")
	f.Bool("lab", false, "append Lab coordinates to each line")

	bindFlags()
}

// bindFlags binds every local flag to the viper key of the same name.
func bindFlags() {
	f := rootCmd.Flags()
	for _, k := range []string{"top", "min-red", "min-green", "min-blue", "quantize", "template", "title", "lab"} {
		viper.BindPFlag(k, f.Lookup(k))
	}
	viper.SetDefault("path", defaultPath)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".colortally")
	}

	viper.SetEnvPrefix("colortally")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		log.Printf("using config file: %s", viper.ConfigFileUsed())
	}
}

func loadSettings() (settings, error) {
	s := settings{
		path:     viper.GetString("path"),
		top:      viper.GetInt("top"),
		quantize: viper.GetInt("quantize"),
		line:     viper.GetString("template"),
		title:    viper.GetString("title"),
		lab:      viper.GetBool("lab"),
	}

	var err error
	if s.minR, err = channel("min-red"); err != nil {
		return s, err
	}
	if s.minG, err = channel("min-green"); err != nil {
		return s, err
	}
	if s.minB, err = channel("min-blue"); err != nil {
		return s, err
	}
	return s, nil
}

// channel reads a threshold that must fit in 8 bits. Config files and
// environment variables bypass the flag's own range check.
func channel(key string) (uint8, error) {
	v := viper.GetInt(key)
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%s must be between 0 and 255, got %d", key, v)
	}
	return uint8(v), nil
}

func run(out io.Writer, s settings) error {
	a := image.Analyzer{
		Keep:     image.Above(s.minR, s.minG, s.minB),
		Quantize: s.quantize,
	}

	if verbose {
		log.Printf("analyzing %s (R > %d, G > %d, B > %d)", s.path, s.minR, s.minG, s.minB)
	}
	ccl, err := a.DominantColors(s.path, s.top)
	if err != nil {
		return err
	}

	line := s.line
	if line == "" && s.lab {
		line = report.LabLine
	}
	w, err := report.New(out, line, s.title)
	if err != nil {
		return err
	}
	return w.Write(ccl)
}
