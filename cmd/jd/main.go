package main

import "jd/cmd/jd/cmd"

func main() {
	cmd.Execute()
}
