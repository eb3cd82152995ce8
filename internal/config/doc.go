// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following
// priority order (later sources only fill fields the earlier ones left
// unset):
//  1. Command-line overrides
//  2. Environment variables (including the application defaults)
//  3. JSON config file
//
// The main entry point is [GetConfig]. The result is an immutable value
// constructed once at startup and passed to every component that needs it;
// nothing reads ambient global state after that.
package config
