package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/stage"
	"fms-dashboard/internal/timespent"
	"fms-dashboard/pkg/datemath"
	pkgLog "fms-dashboard/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calc       timespent.Calculator
	classifier stage.Classifier
	dateMath   *datemath.Parser
	teamCache  *expirable.LRU[string, string]
}

// New creates a new dashboard UseCase instance. The calculator's clock is
// the clock of every use case. teamCache may be nil to disable caching of
// dropdown lookups.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calc timespent.Calculator,
	classifier stage.Classifier,
	dateMath *datemath.Parser,
	teamCache *expirable.LRU[string, string],
) *implUseCase {
	if dateMath == nil {
		dateMath = calc.Calendar.Parser()
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		calc:       calc,
		classifier: classifier,
		dateMath:   dateMath,
		teamCache:  teamCache,
	}
}

// NewTeamCache returns the cache used for team-name lookups.
func NewTeamCache(size int, ttl time.Duration) *expirable.LRU[string, string] {
	if size <= 0 {
		size = 256
	}
	return expirable.NewLRU[string, string](size, nil, ttl)
}

func (uc *implUseCase) now() time.Time {
	if uc.calc.Now == nil {
		return time.Now().In(uc.dateMath.Location())
	}
	return uc.calc.Now().In(uc.dateMath.Location())
}
