// cmd/vcfstats/main.go
package main

import (
	"popsum/internal/appshell"
	"popsum/internal/hetapp"
)

func main() { appshell.Main(hetapp.RunContext) }
