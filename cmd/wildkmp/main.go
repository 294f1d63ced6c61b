package main

import "github.com/zhulik/wildkmp/internal/application"

func main() {
	application.RunCLI()
}
