package main

import "github.com/oshokin/fire-drill/cmd/drill-console/cmd"

func main() {
	cmd.Execute()
}
