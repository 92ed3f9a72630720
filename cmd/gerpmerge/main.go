// cmd/gerpmerge/main.go
package main

import (
	"popsum/internal/appshell"
	"popsum/internal/gerpapp"
)

func main() { appshell.Main(gerpapp.RunContext) }
