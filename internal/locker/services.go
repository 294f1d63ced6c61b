package locker

import (
	"fmt"

	"github.com/zhulik/pal"
	"github.com/zhulik/wildkmp/internal/core"
)

func Provide(config *core.Config) pal.ServiceDef {
	switch config.Locker {
	case core.LockerLocal:
		return pal.Provide[core.Locker](&LocalLocker{})
	case core.LockerRedis:
		return pal.Provide[core.Locker](&RedisLocker{})
	default:
		panic(fmt.Sprintf("unknown locker: %s", config.Locker))
	}
}
