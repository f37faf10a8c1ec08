package main

import "github.com/ubl-sec/container-ids/cmd"

var version = "develop"

func main() {
	cmd.Execute(version)
}
