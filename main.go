package main

import "github.com/eryajf/jenkins-demo/cmd"

func main() {
	cmd.Execute()
}
