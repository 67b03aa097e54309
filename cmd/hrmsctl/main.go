package main

import "hrms-backend/internal/cli"

func main() {
	cli.Execute()
}
