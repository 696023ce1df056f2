package main

import "github.com/rubythedev/data-analysis-and-visualization/cmd"

func main() {
	cmd.Execute()
}
