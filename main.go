package main

import "github.com/panelworks/lcdgen/cmd"

func main() {
	cmd.Execute()
}
