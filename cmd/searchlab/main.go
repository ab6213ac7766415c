package main

import "pkg.jsn.cam/searchlab/internal/cli"

func main() {
	cli.Execute()
}
