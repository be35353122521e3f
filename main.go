package main

import "github.com/dmoj-submit/dmoj-submit/cmd"

func main() {
	cmd.Execute()
}
