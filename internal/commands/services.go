package commands

import (
	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.Provide(&Runner{})
}
