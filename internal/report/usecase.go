package report

import (
	"context"
	"time"

	"github.com/hornerp/reporting-service/internal/report/dto"
)

// UseCase assembles the canonical report dataset for a period. It never
// fails as a whole: individual metrics degrade to their zero values and
// are listed in the summary's warnings.
type UseCase interface {
	BuildSummary(ctx context.Context, p Period, ref time.Time) *dto.ReportSummary
}
