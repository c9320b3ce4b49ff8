package resp

import (
	"net/http"

	"userhub/be/biz/model/dto"
	"userhub/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func Common(msg string) dto.CommonResp {
	return dto.CommonResp{
		Success: true,
		Code:    int(errs.Success.Code()),
		Message: msg,
	}
}

func failBody(bizErr errs.Error) *dto.CommonResp {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	return &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	}
}

func SuccessResp(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, data)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	body := failBody(bizErr)
	status := http.StatusInternalServerError
	if bizErr != nil {
		status = bizErr.Status()
	}
	c.JSON(status, body)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error) {
	status := http.StatusInternalServerError
	if bizErr != nil {
		status = bizErr.Status()
	}
	c.AbortWithStatusJSON(status, failBody(bizErr))
}
