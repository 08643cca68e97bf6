package main

import (
	"net/http"

	"github.com/sahaj33-op/sbextract/cmd"
	"github.com/sahaj33-op/sbextract/internals/ownhttp"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {
	// replace default http client
	http.DefaultClient = ownhttp.New()

	cmd.Version = version
	cmd.Commit = commit
	cmd.Execute()
}
