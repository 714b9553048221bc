package main

import "github.com/oshokin/fire-drill/cmd/drill-server/cmd"

func main() {
	cmd.Execute()
}
