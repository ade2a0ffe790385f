package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/intusaps/intus-website/internal/project/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
