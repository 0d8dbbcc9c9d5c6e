package main

import "parcel-gateway/internal/cli"

func main() {
	cli.Execute()
}
