// Package app contains the application layer of bookbind. It holds the
// runtime configuration, the optional HCL settings file, logger
// construction and the lifecycle that hands a validated job to the page
// rearranger, decoupled from any specific entrypoint like a CLI.
package app
