package usecase

import (
	"context"

	"github.com/coolstat/coolstat/internal/domain/quality"
	"github.com/coolstat/coolstat/internal/platform/logging"
)

// Data-integrity warnings ride along on results; they are logged once
// at compute time and never abort a request.
func logWarnings(ctx context.Context, logger *logging.Logger, op string, warnings []quality.Warning) {
	for _, w := range warnings {
		logger.WarnContext(ctx, "data integrity warning",
			"op", op,
			"code", w.Code,
			"match_id", w.MatchID,
			"event_id", w.EventID,
			"player", w.Player,
			"detail", w.Detail,
		)
	}
}
