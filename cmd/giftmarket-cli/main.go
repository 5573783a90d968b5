package main

import (
	"context"

	"giftmarket-backend/cmd/giftmarket-cli/commands"
	"giftmarket-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "giftmarket-cli")
	telemetry.InstrumentPerfStats(ctx)
	telemetry.InitSlog(false)
	commands.ExecuteContext(ctx)
}
