// Package app wires the recruitment analytics service together: it loads
// configuration, initializes logging and telemetry, constructs the
// dataset, dashboard and health services, mounts the HTTP routes and
// runs the server with graceful shutdown.
package app
