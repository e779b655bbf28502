package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/scott-cotton/cli"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

func showVersion(cfg *VersionConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Version.Parse(cc, args)
	if err != nil {
		cfg.Version.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	writeVersion(cc.Out, cfg.Short)
	return nil
}

func writeVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, version)
		return
	}
	fmt.Fprintf(w, "obaentry version %s\n", version)
	fmt.Fprintf(w, "  Commit:     %s\n", commit)
	fmt.Fprintf(w, "  Built:      %s\n", buildDate)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
