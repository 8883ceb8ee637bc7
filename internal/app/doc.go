// Package app provides the main application logic for the public folder
// web service. It initializes the necessary components, such as the Disk
// client, the listing cache, the aggregation service, and the web server,
// and runs the server until shutdown.
package app
