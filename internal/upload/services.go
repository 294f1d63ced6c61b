package upload

import (
	"github.com/zhulik/pal"
	"github.com/zhulik/wildkmp/internal/core"
)

func Provide(config *core.Config) pal.ServiceDef {
	if config.ResultsS3Endpoint == "" {
		return pal.Provide[core.Uploader](&DiscardUploader{})
	}

	return pal.Provide[core.Uploader](&MinioUploader{})
}
