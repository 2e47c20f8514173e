// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the deployment environment.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key, the deployment environment
// and the throttle applied to the manual sync endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to decide which middleware to install.
package server
