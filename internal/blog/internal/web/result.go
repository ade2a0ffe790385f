package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/intusaps/intus-website/internal/blog/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
