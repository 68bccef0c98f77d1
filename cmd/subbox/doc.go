// Package main hosts the subbox CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, layers command-line
// flags over it, and hands the result to the convert pipeline. Output files
// are written under a lock and each conversion ends with a short summary
// table. Keep the heavy lifting in the internal packages; commands here only
// translate flags into requests and results into terminal output.
package main
