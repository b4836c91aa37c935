package cli

import (
	"context"

	"github.com/andreipop/ediplug/internal/edimax"
)

// plugClient is the slice of edimax.Client the commands use. Tests swap
// newPlugClient to skip the construction-time auth probe.
type plugClient interface {
	GetState(ctx context.Context) (edimax.State, error)
	SetState(ctx context.Context, state edimax.State) error
	NowPower(ctx context.Context) (float64, error)
	NowCurrent(ctx context.Context) (float64, error)
	NowEnergyDay(ctx context.Context) (float64, error)
	NowEnergyWeek(ctx context.Context) (float64, error)
	NowEnergyMonth(ctx context.Context) (float64, error)
	SystemInfo(ctx context.Context) (edimax.SystemInfo, error)
}

var newPlugClient = func(ctx context.Context, flags *rootFlags) (plugClient, error) {
	if err := validateTarget(flags); err != nil {
		return nil, err
	}
	return edimax.New(ctx, flags.Host, flags.Username, flags.Password, flags.Timeout)
}
