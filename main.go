package main

import "csv-comparison/cmd"

func main() {
	cmd.Execute()
}
