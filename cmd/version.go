package cmd

// apiVersion is overridden at build time with -ldflags.
var apiVersion = "dev"
