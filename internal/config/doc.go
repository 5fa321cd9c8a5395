// Package config loads the kubelift configuration.
//
// The configuration is read from a YAML file (default kubelift.yaml) and then
// overridden by environment variables, so credentials can be injected by the
// runtime environment instead of being written to disk. Application
// definitions consumed by "kubelift deploy" are loaded by [LoadApplication].
package config
