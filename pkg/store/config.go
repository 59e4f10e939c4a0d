package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the knobs the CLI reads from .cutover.yaml / CUTOVER_* env.
type Config interface {
	BasePath() string
	API() string
	Token() string
	Timezone() string
	Year() int
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.cutover.db")
	viper.SetDefault("timezone", "GMT")
	viper.SetDefault("year", 2026)
	viper.SetConfigName(".cutover") // .yaml is implicit
	viper.SetEnvPrefix("CUTOVER")
	viper.AutomaticEnv()

	if override := os.Getenv("CUTOVER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:     path,
		APIBase:  viper.GetString("api"),
		AdminTok: viper.GetString("token"),
		TZ:       viper.GetString("timezone"),
		YearVal:  viper.GetInt("year"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	APIBase  string `json:"api"`
	AdminTok string `json:"token"`
	TZ       string `json:"timezone"`
	YearVal  int    `json:"year"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) API() string      { return f.APIBase }
func (f *fileConfig) Token() string    { return f.AdminTok }
func (f *fileConfig) Timezone() string { return f.TZ }
func (f *fileConfig) Year() int        { return f.YearVal }
