package main

import (
	"context"

	"almanac-backend/cmd/almanac-cli/commands"
	"almanac-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
