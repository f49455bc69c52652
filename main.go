package main

import "creditwise/cli"

func main() {
	cli.Execute()
}
