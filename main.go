package main

import "github.com/vegasq/fsql/cmd"

func main() {
	cmd.Execute()
}
