// cmd/phichain/main.go
package main

import (
	"phichain/internal/app"
	"phichain/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
