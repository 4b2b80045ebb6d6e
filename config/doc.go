// Package config loads program configuration from a YAML file, a .env file
// and the environment, using Viper and godotenv.
//
// # Usage
//
//	var cfg AppConfig
//	if err := config.LoadConfig("inspectree", &cfg, config.WithConfigFile(path)); err != nil {
//	    return err
//	}
//
// Environment variables override file values. INSPECTREE_REPORT_FORMAT maps
// to report.format, using the upper-cased service name as prefix.
package config
