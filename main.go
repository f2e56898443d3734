package main

import (
	"os"

	"github.com/llehouerou/mpdwaves/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
