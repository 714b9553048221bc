package main

import "github.com/oshokin/fire-drill/cmd/drill-ctl/cmd"

func main() {
	cmd.Execute()
}
