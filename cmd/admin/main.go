package main

import "saapadu/cli"

func main() {
	cli.Execute()
}
