package main

import (
	"encoding/json"
	"os"
	"path"

	"github.com/krancour/courtside/internal/file"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type config struct {
	APIAddress string `json:"apiAddress"`
	APIToken   string `json:"apiToken"`
}

func getConfig() (*config, error) {
	courtsideHome, err := getCourtsideHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding courtside home")
	}
	courtsideConfigFile := path.Join(courtsideHome, "config")
	if !file.Exists(courtsideConfigFile) {
		return nil, errors.Errorf(
			"no courtside configuration was found at %s; please use "+
				"`courtside login` to continue",
			courtsideConfigFile,
		)
	}

	configBytes, err := os.ReadFile(courtsideConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading courtside config file at %s",
			courtsideConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing courtside config file at %s",
			courtsideConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	courtsideHome, err := getCourtsideHome()
	if err != nil {
		return errors.Wrapf(err, "error finding courtside home")
	}
	// The config holds a bearer token, so only the owner may read it
	if err = os.MkdirAll(courtsideHome, 0700); err != nil {
		return errors.Wrapf(
			err,
			"error creating courtside home at %s",
			courtsideHome,
		)
	}
	courtsideConfigFile := path.Join(courtsideHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err :=
		os.WriteFile(courtsideConfigFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", courtsideConfigFile)
	}
	return nil
}

func deleteConfig() error {
	courtsideHome, err := getCourtsideHome()
	if err != nil {
		return errors.Wrapf(err, "error finding courtside home")
	}
	courtsideConfigFile := path.Join(courtsideHome, "config")

	if err := os.Remove(courtsideConfigFile); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}

	return nil
}

func getCourtsideHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".courtside"), nil
}
