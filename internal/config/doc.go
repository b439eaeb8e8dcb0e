// Package config loads, merges and validates the configuration of prefsd
// and prefsctl.
//
// Sources, from lowest to highest priority (a higher source overrides every
// non-zero field it sets):
//  1. JSON config file
//  2. .env file, exported into the environment
//  3. Environment variables
//  4. Command-line flags (prefsd only)
//
// Defaults fill whatever is still empty afterwards.
package config
