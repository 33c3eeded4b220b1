// Package config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all configuration options for opening a CGF
// archive and extracting its entries. The configuration options can be
// adjusted using the option pattern style.
package config
