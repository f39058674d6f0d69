package main

import (
	"os"
	"strings"

	"conectapro/config"
	"conectapro/helper"
	"conectapro/shared/logger"

	"github.com/rs/zerolog/log"
)

var usage = strings.Join([]string{helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop}, "|")

func main() {
	logger.InitLogger()

	if len(os.Args) != 2 {
		log.Fatal().Msgf("usage: migrate <%s>", usage)
	}

	action := os.Args[1]
	cfg := config.Get()

	logger.Configure(cfg)

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}
