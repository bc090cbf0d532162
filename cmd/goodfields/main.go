package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	var args []string
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe(args)
	case "build":
		err = runBuild(args)
	case "check":
		err = runCheck(args)
	case "version":
		fmt.Printf("goodfields %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`goodfields - the GoodFields marketing site

Usage:
  goodfields <command> [flags]

Commands:
  serve                          Serve the site over HTTP (default)
  build -out DIR [-content FILE] Render the site to static files
  check [-content FILE]          Validate configuration, copy and links
  version                        Print the version
  help                           Show this help message

Environment:
  BOOKING_URL, CONTACT_EMAIL     Override the booking link and contact address
  GOODFIELDS_ADDR                Listen address (default :3000)
  GOODFIELDS_LOG_LEVEL           debug, info, warn, error or off (default info)
  GOODFIELDS_RATE_LIMIT          Requests per second per IP, 0 disables (default 20)
  GOODFIELDS_RATE_BURST          Rate limiter burst (default 40)
  GOODFIELDS_CANONICAL_REDIRECT  Redirect www. to the bare host (default true)

A .env file in the working directory is loaded if present.`)
}
