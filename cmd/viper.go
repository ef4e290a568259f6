package cmd

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const viperPrefix = "hexdump"

func viperKey(key string) string {
	return viperPrefix + "." + key
}

func ViperGetString(key string) string {
	return viper.GetString(viperKey(key))
}

func ViperGetBool(key string) bool {
	return viper.GetBool(viperKey(key))
}

func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func OptionSwitch(cmd *cobra.Command, name, flag, description string) {
	if flag == "" {
		cmd.PersistentFlags().Bool(name, false, description)
	} else {
		cmd.PersistentFlags().BoolP(name, flag, false, description)
	}
	err := viper.BindPFlag(viperKey(flagKey(name)), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func OptionString(cmd *cobra.Command, name, flag, defaultValue, description string) {
	if flag == "" {
		cmd.PersistentFlags().String(name, defaultValue, description)
	} else {
		cmd.PersistentFlags().StringP(name, flag, defaultValue, description)
	}
	err := viper.BindPFlag(viperKey(flagKey(name)), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func InitConfig() {
	cfgFile := ViperGetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, ".config", viperPrefix))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix(viperPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(strings.ToUpper(viperPrefix)+".", "", ".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}
	InitLog()

	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		cobra.CheckErr(err)
		log.Printf("config file: %s\n### START ###\n%s\n### END ###\n", viper.ConfigFileUsed(), buf.String())
	}
}

var logFile *os.File

func InitLog() {
	filename := ViperGetString("logfile")
	if filename == "" {
		return
	}
	if logFile != nil {
		if logFile.Name() == filename {
			return
		}
		logFile.Close()
		logFile = nil
	}
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	cobra.CheckErr(err)
	logFile = file
	log.SetOutput(logFile)
}
