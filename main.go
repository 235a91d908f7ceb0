package main

import "github.com/Sena-ops/cppcheck2teamcity/cmd"

func main() {
	cmd.Execute()
}
