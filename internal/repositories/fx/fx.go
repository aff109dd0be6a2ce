package fx

import (
	"github.com/capsy-labs/capsy-companion/internal/repositories/capsule"
	"go.uber.org/fx"
)

var Module = fx.Options(
	capsule.Module,
)
