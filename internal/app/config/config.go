package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const configFolder = "radiohop"
const paramFilename = "param.yaml"
const stationsFilename = "stations"

//go:embed param_default.yaml
var ParamDefaultFile []byte

type Param struct {
	Player        PlayerParam   `yaml:"player"`
	Registry      RegistryParam `yaml:"registry"`
	DefaultRating int           `yaml:"default_rating"`
}

type PlayerParam struct {
	Command   string   `yaml:"command"`
	QueryArgs []string `yaml:"query_args"`
	PlayArgs  []string `yaml:"play_args"`
}

type RegistryParam struct {
	Path string `yaml:"path"`
}

// DefaultDir is the per-user radiohop config folder.
func DefaultDir() string {
	defaultConfigDir := "./." + configFolder
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		defaultConfigDir = filepath.Join(userConfigDir, configFolder)
	}
	return defaultConfigDir
}

// Load reads param.yaml from configDir, creating the folder and a
// default param file on first run.
func Load(configDir string) *Param {
	// Check configuration folder
	_, err := os.Stat(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Printf("Creation of config folder: %s", configDir)
			err = os.MkdirAll(configDir, 0770)
			if err != nil {
				logrus.Fatalf("Unable to create config folder: %v", err)
			}
		} else {
			logrus.Fatalf("Unable to access config folder: %s", configDir)
		}
	}

	paramPath := filepath.Join(configDir, paramFilename)
	rawConfig, err := os.ReadFile(paramPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Fatalf("Unable to read param file: %v", err)
		}
		logrus.Infof("Create default param file: %s", paramPath)
		rawConfig = ParamDefaultFile
		err = os.WriteFile(paramPath, rawConfig, 0660)
		if err != nil {
			logrus.Fatalf("Unable to save param file: %v", err)
		}
	}

	param := &Param{}
	err = yaml.Unmarshal(rawConfig, param)
	if err != nil {
		logrus.Fatalf("Unable to interpret param file: %v", err)
	}
	param.applyDefaults()

	return param
}

// applyDefaults fills fields the param file leaves empty. The registry
// default points at the stations file in the player's own per-user
// config folder.
func (p *Param) applyDefaults() {
	if p.Player.Command == "" {
		p.Player.Command = "qlcontrol"
	}
	if len(p.Player.QueryArgs) == 0 {
		p.Player.QueryArgs = []string{"current-title"}
	}
	if len(p.Player.PlayArgs) == 0 {
		p.Player.PlayArgs = []string{"play", "--no-focus"}
	}
	if p.Registry.Path == "" {
		base := "."
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			base = userConfigDir
		}
		p.Registry.Path = filepath.Join(base, p.Player.Command, stationsFilename)
	}
}
