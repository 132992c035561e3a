package main

import "github.com/StinkyLord/sbom-exchange/cmd"

func main() {
	cmd.Execute()
}
