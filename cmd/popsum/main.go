// cmd/popsum/main.go
package main

import (
	"popsum/internal/app"
	"popsum/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
