// Package config provides configuration loading, merging, and validation
// facilities for the anime-saver server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, after exporting the .env file
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] and [GetClientConfig].
package config
